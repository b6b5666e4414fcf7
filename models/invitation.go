package models

// SectionData maps a section name (hero, gallery, rsvp, ...) to its variable
// values. Variable names are unprefixed once mapped.
type SectionData map[string]map[string]interface{}

// Invitation represents a published (or draft) invitation in DynamoDB.
type Invitation struct {
	InvitationID   string        `json:"invitationId" dynamodbav:"invitationId"` // PK
	UserID         string        `json:"userId" dynamodbav:"userId"`             // GSI: userId-index
	TemplateID     string        `json:"templateId" dynamodbav:"templateId"`
	Title          string        `json:"title" dynamodbav:"title"`
	URLSlug        string        `json:"urlSlug" dynamodbav:"urlSlug"` // GSI: urlSlug-index
	Published      bool          `json:"published" dynamodbav:"published"`
	PublishedAt    string        `json:"publishedAt,omitempty" dynamodbav:"publishedAt,omitempty"`
	Views          int64         `json:"views" dynamodbav:"views"`
	InvitationData SectionData   `json:"invitationData" dynamodbav:"invitationData"`
	Media          []MediaRecord `json:"media,omitempty" dynamodbav:"media,omitempty"`
	Events         []EventRecord `json:"events,omitempty" dynamodbav:"events,omitempty"`
	CreatedAt      string        `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt      string        `json:"updatedAt" dynamodbav:"updatedAt"`
}

// MediaRecord is a gallery image or audio track attached to an invitation.
// FileKey points at the S3 object; URL is filled with a presigned link when
// the invitation is served.
type MediaRecord struct {
	MediaID   string `json:"mediaId" dynamodbav:"mediaId"`
	Kind      string `json:"kind" dynamodbav:"kind"` // "image", "audio"
	FileKey   string `json:"fileKey" dynamodbav:"fileKey"`
	URL       string `json:"url,omitempty" dynamodbav:"-"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// EventRecord captures an RSVP or analytics event against an invitation.
type EventRecord struct {
	EventID   string                 `json:"eventId" dynamodbav:"eventId"`
	Type      string                 `json:"type" dynamodbav:"type"` // "rsvp", "visit", "share"
	Payload   map[string]interface{} `json:"payload,omitempty" dynamodbav:"payload,omitempty"`
	CreatedAt string                 `json:"createdAt" dynamodbav:"createdAt"`
}

// TableName returns the DynamoDB table name
func (Invitation) TableName() string {
	return InvitationsTable
}
