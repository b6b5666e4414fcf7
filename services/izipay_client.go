package services

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"invitaciones_server/models"
)

// IzipayClient talks to the Izipay (Lyra) REST API. Credentials and endpoint
// come from the environment: IZIPAY_SHOP_ID, IZIPAY_SECRET_KEY,
// IZIPAY_PUBLIC_KEY, IZIPAY_ENDPOINT, IZIPAY_MODE.
type IzipayClient struct {
	ShopID     string
	SecretKey  string
	PublicKey  string
	Endpoint   string
	Mode       string
	HTTPClient *http.Client
}

// NewIzipayClientFromEnv builds the client from environment variables.
func NewIzipayClientFromEnv() *IzipayClient {
	endpoint := os.Getenv("IZIPAY_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://api.micuentaweb.pe"
	}
	mode := os.Getenv("IZIPAY_MODE")
	if mode == "" {
		mode = models.PaymentModeTest
	}

	return &IzipayClient{
		ShopID:     os.Getenv("IZIPAY_SHOP_ID"),
		SecretKey:  os.Getenv("IZIPAY_SECRET_KEY"),
		PublicKey:  os.Getenv("IZIPAY_PUBLIC_KEY"),
		Endpoint:   endpoint,
		Mode:       mode,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type createPaymentRequest struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	OrderID  string `json:"orderId"`
	Customer struct {
		Email string `json:"email,omitempty"`
	} `json:"customer"`
}

type createPaymentResponse struct {
	Status string `json:"status"`
	Answer struct {
		FormToken    string `json:"formToken"`
		ErrorMessage string `json:"errorMessage"`
	} `json:"answer"`
}

// CreateFormToken requests a payment form token for an order. The token is
// tied to the order's exact amount and can be used once.
func (c *IzipayClient) CreateFormToken(ctx context.Context, order *models.Order) (string, error) {
	payload := createPaymentRequest{
		Amount:   int64(math.Round(order.Total * 100)),
		Currency: order.Currency,
		OrderID:  order.OrderID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal CreatePayment request: %w", err)
	}

	url := c.Endpoint + "/api-payment/V4/Charge/CreatePayment"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build CreatePayment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.ShopID, c.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("%w: izipay returned %d", models.ErrServer, resp.StatusCode)
	}

	var parsed createPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode CreatePayment response: %w", err)
	}

	if parsed.Status != "SUCCESS" || parsed.Answer.FormToken == "" {
		return "", fmt.Errorf("%w: %s", models.ErrPaymentRejected, parsed.Answer.ErrorMessage)
	}

	return parsed.Answer.FormToken, nil
}

// ValidateSignature checks the HMAC-SHA256 signature on a server-to-server
// notification. The raw kr-answer body is signed with the shop's secret key;
// the payload is only trusted when the signature matches.
func (c *IzipayClient) ValidateSignature(rawAnswer, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.SecretKey))
	mac.Write([]byte(rawAnswer))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
