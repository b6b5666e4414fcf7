package services

import (
	"context"
	"fmt"
	"time"

	"invitaciones_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type UserService struct {
	Dynamo *DynamoService
}

// AddUser creates an account record.
func (us *UserService) AddUser(ctx context.Context, user models.UserAccount) (*models.UserAccount, error) {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := us.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	return &user, nil
}

// GetUser retrieves an account by id.
func (us *UserService) GetUser(ctx context.Context, userID string) (*models.UserAccount, error) {
	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	})
	if err != nil {
		return nil, err
	}

	var user models.UserAccount
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}
