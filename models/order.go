package models

// Order is a checkout order in DynamoDB. Amount and currency are snapshots
// taken at purchase time; FormToken is the single-use Izipay token tied to
// this order's amount.
type Order struct {
	OrderID      string  `json:"orderId" dynamodbav:"orderId"` // PK
	OrderNumber  string  `json:"orderNumber" dynamodbav:"orderNumber"`
	UserID       string  `json:"userId" dynamodbav:"userId"`
	TemplateID   string  `json:"templateId" dynamodbav:"templateId"`
	InvitationID string  `json:"invitationId,omitempty" dynamodbav:"invitationId,omitempty"`
	Total        float64 `json:"total" dynamodbav:"total"`
	Currency     string  `json:"currency" dynamodbav:"currency"`
	Status       string  `json:"status" dynamodbav:"status"` // PENDING, PAID, FAILED, CANCELLED
	FormToken    string  `json:"-" dynamodbav:"formToken,omitempty"`
	CreatedAt    string  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt    string  `json:"updatedAt" dynamodbav:"updatedAt"`
}

// PaymentConfig is what the checkout page needs to mount the payment form.
type PaymentConfig struct {
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`
	FormToken   string  `json:"formToken"`
	PublicKey   string  `json:"publicKey"`
	Mode        string  `json:"mode"` // TEST, PRODUCTION, SANDBOX
}

// TableName returns the DynamoDB table name
func (Order) TableName() string {
	return OrdersTable
}
