package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"invitaciones_server/models"
	"invitaciones_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type OrderService struct {
	Dynamo *DynamoService
}

// CreateOrder stores a new PENDING order with amount and currency snapshots.
func (ors *OrderService) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	now := time.Now().UTC()

	order.OrderID = uuid.NewString()
	order.OrderNumber = fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), order.OrderID[:8])
	order.Status = models.PaymentStatusPending
	if order.Currency == "" {
		order.Currency = "PEN"
	}
	order.CreatedAt = now.Format(time.RFC3339)
	order.UpdatedAt = order.CreatedAt

	if err := ors.Dynamo.PutItem(ctx, models.OrdersTable, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Printf("✅ Order %s created (%s %.2f %s)", order.OrderNumber, order.OrderID, order.Total, order.Currency)
	return &order, nil
}

// GetOrder retrieves an order by id.
func (ors *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	item, err := ors.Dynamo.GetItem(ctx, models.OrdersTable, map[string]types.AttributeValue{
		"orderId": &types.AttributeValueMemberS{Value: orderID},
	})
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := attributevalue.UnmarshalMap(item, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

// GetOrderStatus returns just the order's payment status.
func (ors *OrderService) GetOrderStatus(ctx context.Context, orderID string) (string, error) {
	item, err := ors.Dynamo.GetItem(ctx, models.OrdersTable, map[string]types.AttributeValue{
		"orderId": &types.AttributeValueMemberS{Value: orderID},
	})
	if err != nil {
		return "", err
	}
	return utils.ExtractString(item, "status"), nil
}

// UpdateOrderStatus moves an order to a new payment status.
func (ors *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	attrs, err := ors.Dynamo.UpdateItem(ctx, models.OrdersTable,
		"SET #s = :status, updatedAt = :now",
		map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: orderID},
		},
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
			":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#s": "status"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	var order models.Order
	if err := attributevalue.UnmarshalMap(attrs, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated order: %w", err)
	}

	log.Printf("💳 Order %s status -> %s", orderID, status)
	return &order, nil
}

// SaveFormToken records the single-use Izipay form token on the order.
// A fresh token always replaces the previous one; tokens are tied to one
// order amount and must not be reused.
func (ors *OrderService) SaveFormToken(ctx context.Context, orderID, formToken string) error {
	_, err := ors.Dynamo.UpdateItem(ctx, models.OrdersTable,
		"SET formToken = :token, updatedAt = :now",
		map[string]types.AttributeValue{
			"orderId": &types.AttributeValueMemberS{Value: orderID},
		},
		map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: formToken},
			":now":   &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to save form token: %w", err)
	}
	return nil
}
