package models

// Draft is an in-progress customization of a demo invitation, keyed by
// "demo-customizer-{templateId}". CustomizerData holds the flat field map
// exactly as the customizer edits it; TouchedFields marks fields the user
// actually changed so they win over template defaults during merge.
type Draft struct {
	DraftKey       string                 `json:"draftKey" dynamodbav:"draftKey"` // PK
	CustomizerData map[string]interface{} `json:"customizerData" dynamodbav:"customizerData"`
	TouchedFields  map[string]bool        `json:"touchedFields" dynamodbav:"touchedFields"`
	SelectedMode   string                 `json:"selectedMode,omitempty" dynamodbav:"selectedMode,omitempty"`
	UpdatedAt      string                 `json:"updatedAt" dynamodbav:"updatedAt"`
}

// TableName returns the DynamoDB table name
func (Draft) TableName() string {
	return DraftsTable
}
