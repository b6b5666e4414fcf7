package models

// Template holds the metadata and customization schema of a visual template.
type Template struct {
	TemplateID   string              `json:"templateId" dynamodbav:"templateId"` // PK
	Name         string              `json:"name" dynamodbav:"name"`
	Category     string              `json:"category" dynamodbav:"category"`
	Premium      bool                `json:"premium" dynamodbav:"premium"`
	Features     []string            `json:"features,omitempty" dynamodbav:"features,omitempty"`
	Colors       map[string]string   `json:"colors,omitempty" dynamodbav:"colors,omitempty"` // color role -> hex
	Sections     map[string][]string `json:"sections" dynamodbav:"sections"`                 // section -> declared variable slots
	Defaults     SectionData         `json:"defaults,omitempty" dynamodbav:"defaults,omitempty"`
	TemplateFile string              `json:"templateFile,omitempty" dynamodbav:"templateFile,omitempty"`
	Price        float64             `json:"price" dynamodbav:"price"`
	Currency     string              `json:"currency" dynamodbav:"currency"`
}

// RenderFile returns the component identifier a client should load.
// Falls back to a name derived from the template id when templateFile was
// never set on the record.
func (t *Template) RenderFile() string {
	if t.TemplateFile != "" {
		return t.TemplateFile
	}
	return "template-" + t.TemplateID
}

// TableName returns the DynamoDB table name
func (Template) TableName() string {
	return TemplatesTable
}
