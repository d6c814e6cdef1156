package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bodega-storefront/internal/domain"
)

const authHeader = "X-Api-Key"

// Client talks to the ordering backend. It only knows the request/response
// contract; retries, sequencing and cart state are the pipeline's business.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Error is a non-2xx response from the backend. Message carries the body's
// human-readable reason when one is present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// CreateOrderResponse is the create-order ack. The payment step forwards it
// verbatim, so unknown fields from the backend survive the round trip.
type CreateOrderResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Message          string `json:"message,omitempty"`
}

type ProcessPaymentResponse struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"payment_id"`
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

type paymentRequest struct {
	Order   CreateOrderResponse `json:"order"`
	Payment domain.PaymentInput `json:"payment"`
}

type confirmRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

// CreateOrder submits the draft and returns the backend's order identifier.
func (c *Client) CreateOrder(ctx context.Context, draft domain.OrderDraft) (*CreateOrderResponse, error) {
	var out CreateOrderResponse
	if err := c.post(ctx, "/api/orders", draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessPayment requests payment for a created order, forwarding the
// create-order response together with the opaque payment input.
func (c *Client) ProcessPayment(ctx context.Context, order CreateOrderResponse, payment domain.PaymentInput) (*ProcessPaymentResponse, error) {
	var out ProcessPaymentResponse
	if err := c.post(ctx, "/api/payments/process", paymentRequest{Order: order, Payment: payment}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmOrder marks the paid order confirmed. The ack body is ignored.
func (c *Client) ConfirmOrder(ctx context.Context, orderID, paymentID string) error {
	return c.post(ctx, "/api/orders/confirm", confirmRequest{
		OrderID:   orderID,
		PaymentID: paymentID,
		Status:    string(domain.OrderStatusConfirmed),
	}, nil)
}

// GetOrderStatus looks up a previously created order.
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (*domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, "/api/orders/"+orderID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMenu fetches the purchasable items.
func (c *Client) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var out struct {
		Items []domain.MenuItem `json:"items"`
	}
	if err := c.get(ctx, "/api/menu", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set(authHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// errorMessage digs the human-readable reason out of an error body. The Go
// backend answers {"error": ...}; the original python one used {"detail": ...}.
func errorMessage(raw []byte) string {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return strings.TrimSpace(string(raw))
}
