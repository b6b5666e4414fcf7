package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"invitaciones_server/models"
)

// PaymentService coordinates the checkout payment flow: form tokens from
// Izipay, the order-status watch, and server-to-server notifications.
type PaymentService struct {
	Orders *OrderService
	Izipay *IzipayClient
	Bus    *PaymentBus
	Poller *PaymentPoller
}

func NewPaymentService(orders *OrderService, izipay *IzipayClient, bus *PaymentBus) *PaymentService {
	ps := &PaymentService{
		Orders: orders,
		Izipay: izipay,
		Bus:    bus,
	}
	ps.Poller = NewPaymentPoller(orders.GetOrderStatus, bus)
	ps.Poller.OnPaid = func(orderID string) {
		log.Printf("✅ Order %s confirmed paid", orderID)
	}
	ps.Poller.OnError = func(orderID string, err error) {
		log.Printf("❌ Payment watch ended for order %s: %v", orderID, err)
	}
	return ps
}

// CreateFormToken requests a fresh single-use form token for a pending order
// and returns the config the checkout page needs to mount the payment form.
func (ps *PaymentService) CreateFormToken(ctx context.Context, orderID string) (*models.PaymentConfig, error) {
	order, err := ps.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == models.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: order is already paid", models.ErrValidation)
	}

	formToken, err := ps.Izipay.CreateFormToken(ctx, order)
	if err != nil {
		return nil, err
	}

	// The previous token, if any, is dead from here on
	if err := ps.Orders.SaveFormToken(ctx, orderID, formToken); err != nil {
		return nil, err
	}

	return &models.PaymentConfig{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		Currency:    order.Currency,
		FormToken:   formToken,
		PublicKey:   ps.Izipay.PublicKey,
		Mode:        ps.Izipay.Mode,
	}, nil
}

// StartWatch begins polling the order's status so subscribers get a push
// when it settles. Safe to call repeatedly; only one watch runs per order.
func (ps *PaymentService) StartWatch(orderID string) {
	if ps.Poller.Start(context.Background(), orderID) {
		log.Printf("👀 Watching payment status for order %s", orderID)
	}
}

// GetStatus returns the order's current payment status.
func (ps *PaymentService) GetStatus(ctx context.Context, orderID string) (string, error) {
	status, err := ps.Orders.GetOrderStatus(ctx, orderID)
	if err != nil {
		return "", err
	}
	if status == "" {
		return "", models.ErrNotFound
	}
	return status, nil
}

// notificationAnswer is the kr-answer payload of an Izipay IPN call.
type notificationAnswer struct {
	OrderStatus  string `json:"orderStatus"`
	OrderDetails struct {
		OrderID string `json:"orderId"`
	} `json:"orderDetails"`
}

// HandleNotification processes a signed server-to-server notification from
// Izipay, updates the order and publishes the transition. The signature must
// match before anything in the payload is trusted.
func (ps *PaymentService) HandleNotification(ctx context.Context, rawAnswer, signature string) (*models.Order, error) {
	if !ps.Izipay.ValidateSignature(rawAnswer, signature) {
		return nil, fmt.Errorf("%w: bad notification signature", models.ErrValidation)
	}

	var answer notificationAnswer
	if err := json.Unmarshal([]byte(rawAnswer), &answer); err != nil {
		return nil, fmt.Errorf("%w: malformed notification payload", models.ErrValidation)
	}
	if answer.OrderDetails.OrderID == "" {
		return nil, fmt.Errorf("%w: notification missing order id", models.ErrValidation)
	}

	status := mapGatewayStatus(answer.OrderStatus)
	order, err := ps.Orders.UpdateOrderStatus(ctx, answer.OrderDetails.OrderID, status)
	if err != nil {
		return nil, err
	}

	// The watch loop would observe the same terminal state next tick;
	// stop it so the bus sees a single transition.
	switch status {
	case models.PaymentStatusPaid, models.PaymentStatusFailed, models.PaymentStatusCancelled:
		ps.Poller.Stop(order.OrderID)
	}

	ps.Bus.Publish(PaymentEvent{
		OrderID: order.OrderID,
		Status:  status,
		At:      time.Now().UTC(),
	})
	return order, nil
}

// mapGatewayStatus translates Izipay order statuses onto ours.
func mapGatewayStatus(gatewayStatus string) string {
	switch gatewayStatus {
	case "PAID":
		return models.PaymentStatusPaid
	case "RUNNING", "PARTIALLY_PAID":
		return models.PaymentStatusPending
	case "UNPAID", "ABANDONED":
		return models.PaymentStatusCancelled
	default:
		return models.PaymentStatusFailed
	}
}
