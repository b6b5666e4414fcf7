package models

// UserAccount backs invitation ownership and the dashboard listing.
type UserAccount struct {
	UserID    string `json:"userId" dynamodbav:"userId"` // PK
	EmailID   string `json:"emailId" dynamodbav:"emailId"`
	FullName  string `json:"fullName" dynamodbav:"fullName"`
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// TableName returns the DynamoDB table name
func (UserAccount) TableName() string {
	return UsersTable
}
