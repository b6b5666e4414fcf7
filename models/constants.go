package models

// DynamoDB table names
const (
	InvitationsTable = "Invitations"
	TemplatesTable   = "Templates"
	DraftsTable      = "CustomizerDrafts"
	OrdersTable      = "Orders"
	UsersTable       = "Users"
)

// GSI names
const (
	InvitationsByURLIndex  = "urlSlug-index"
	InvitationsByUserIndex = "userId-index"
)

// ✅ Order / payment statuses
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusPaid      = "PAID"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusCancelled = "CANCELLED"
)

// ✅ Payment gateway modes
const (
	PaymentModeTest       = "TEST"
	PaymentModeProduction = "PRODUCTION"
	PaymentModeSandbox    = "SANDBOX"
)

// Invitation event types (RSVP + analytics)
const (
	EventTypeRSVP  = "rsvp"
	EventTypeVisit = "visit"
	EventTypeShare = "share"
)
