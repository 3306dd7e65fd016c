package gateway

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client talks to the payment gateway's order API. Keys are injected at
// construction; business logic never reads them from the environment.
type Client struct {
	keyID     string
	keySecret string
	apiURL    string
	http      *http.Client
}

// NewClient builds a gateway client. The HTTP timeout is deliberately short:
// on timeout the local order is left pending and the caller may retry.
func NewClient(keyID, keySecret, apiURL string) (*Client, error) {
	if keyID == "" || keySecret == "" || apiURL == "" {
		return nil, fmt.Errorf("gateway configuration missing")
	}
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		apiURL:    apiURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// NewClientFromEnv reads PAYMENT_KEY_ID, PAYMENT_KEY_SECRET and PAYMENT_API_URL.
func NewClientFromEnv() (*Client, error) {
	return NewClient(
		os.Getenv("PAYMENT_KEY_ID"),
		os.Getenv("PAYMENT_KEY_SECRET"),
		os.Getenv("PAYMENT_API_URL"),
	)
}

type orderRequest struct {
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder opens a gateway-side transaction for the given amount in minor
// units and returns the gateway order id.
func (c *Client) CreateOrder(amountMinor int64, currency, receipt string) (string, error) {
	payload, err := json.Marshal(orderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("gateway API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed orderResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse gateway response: %v", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gateway error: %s", parsed.Error.Description)
	}
	if parsed.ID == "" {
		return "", fmt.Errorf("gateway returned empty order id")
	}
	return parsed.ID, nil
}

// Sign computes the callback signature for an order/payment id pair:
// hex(HMAC-SHA256("orderID|paymentID", keySecret)).
func (c *Client) Sign(gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares the supplied signature against the recomputed HMAC
// in constant time.
func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	expected := c.Sign(gatewayOrderID, gatewayPaymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
