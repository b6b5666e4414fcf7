package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"invitaciones_server/models"
)

func signAnswer(secret, rawAnswer string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(rawAnswer))
	return hex.EncodeToString(mac.Sum(nil))
}

func notificationTestService() *PaymentService {
	return &PaymentService{
		Izipay: &IzipayClient{SecretKey: "shop-secret"},
		Bus:    NewPaymentBus(),
	}
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	ps := notificationTestService()

	_, err := ps.HandleNotification(context.Background(), `{"orderStatus":"PAID"}`, "deadbeef")
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation for bad signature, got %v", err)
	}
}

func TestHandleNotificationRejectsMalformedAnswer(t *testing.T) {
	ps := notificationTestService()
	raw := `{not json`

	_, err := ps.HandleNotification(context.Background(), raw, signAnswer("shop-secret", raw))
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation for malformed payload, got %v", err)
	}
}

func TestHandleNotificationRequiresOrderID(t *testing.T) {
	ps := notificationTestService()
	raw := `{"orderStatus":"PAID","orderDetails":{}}`

	_, err := ps.HandleNotification(context.Background(), raw, signAnswer("shop-secret", raw))
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation for missing order id, got %v", err)
	}
}

func TestValidateSignature(t *testing.T) {
	client := &IzipayClient{SecretKey: "shop-secret"}
	raw := `{"orderStatus":"PAID"}`

	if !client.ValidateSignature(raw, signAnswer("shop-secret", raw)) {
		t.Error("valid signature rejected")
	}
	if client.ValidateSignature(raw, signAnswer("other-secret", raw)) {
		t.Error("signature from a different key accepted")
	}
}

func TestMapGatewayStatus(t *testing.T) {
	tests := map[string]string{
		"PAID":           models.PaymentStatusPaid,
		"RUNNING":        models.PaymentStatusPending,
		"PARTIALLY_PAID": models.PaymentStatusPending,
		"UNPAID":         models.PaymentStatusCancelled,
		"ABANDONED":      models.PaymentStatusCancelled,
		"REFUSED":        models.PaymentStatusFailed,
	}

	for gateway, want := range tests {
		if got := mapGatewayStatus(gateway); got != want {
			t.Errorf("mapGatewayStatus(%q) = %q, want %q", gateway, got, want)
		}
	}
}
