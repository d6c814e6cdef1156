package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bodega-storefront/internal/domain"
)

func testDraft() domain.OrderDraft {
	return domain.OrderDraft{
		Items: []domain.OrderDraftLine{
			{ID: "bec", Name: "Bacon Egg & Cheese", PriceCents: 650, Quantity: 2, TotalCents: 1300},
		},
		Customer: domain.CustomerInfo{
			Name: "Ray", Email: "ray@example.com", Phone: "718-555-0199",
			OrderType: domain.OrderTypePickup,
		},
		OrderType:     domain.OrderTypePickup,
		SubtotalCents: 1300,
		TotalCents:    1300,
		Timestamp:     time.Now().UTC(),
	}
}

func TestCreateOrder_SendsHeadersAndBody(t *testing.T) {
	var gotAuth, gotContentType string
	var gotDraft domain.OrderDraft

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("X-Api-Key")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotDraft); err != nil {
			t.Fatalf("decode draft: %v", err)
		}
		json.NewEncoder(w).Encode(CreateOrderResponse{Success: true, OrderID: "BBG1A42", Status: "pending"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	resp, err := client.CreateOrder(context.Background(), testDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OrderID != "BBG1A42" {
		t.Fatalf("expected order id BBG1A42, got %q", resp.OrderID)
	}
	if gotAuth != "test-key" {
		t.Fatalf("expected api key header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if gotDraft.TotalCents != 1300 || len(gotDraft.Items) != 1 {
		t.Fatalf("draft not transmitted intact: %+v", gotDraft)
	}
}

func TestProcessPayment_ForwardsCreateResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/payments/process" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Order   CreateOrderResponse `json:"order"`
			Payment domain.PaymentInput `json:"payment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode payment request: %v", err)
		}
		if req.Order.OrderID != "o1" {
			t.Fatalf("expected forwarded order id o1, got %q", req.Order.OrderID)
		}
		if req.Payment.CardToken != "tok_abc" {
			t.Fatalf("expected card token forwarded, got %q", req.Payment.CardToken)
		}
		json.NewEncoder(w).Encode(ProcessPaymentResponse{Success: true, PaymentID: "p1", OrderID: "o1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	resp, err := client.ProcessPayment(context.Background(),
		CreateOrderResponse{OrderID: "o1", Status: "pending"},
		domain.PaymentInput{Method: domain.PaymentMethodCard, CardToken: "tok_abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PaymentID != "p1" {
		t.Fatalf("expected payment id p1, got %q", resp.PaymentID)
	}
}

func TestConfirmOrder_IgnoresAckBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OrderID   string `json:"order_id"`
			PaymentID string `json:"payment_id"`
			Status    string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode confirm request: %v", err)
		}
		if req.OrderID != "o1" || req.PaymentID != "p1" || req.Status != "confirmed" {
			t.Fatalf("unexpected confirm body: %+v", req)
		}
		w.Write([]byte(`{"whatever": true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	if err := client.ConfirmOrder(context.Background(), "o1", "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNonSuccessStatus_SurfacesBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "payment declined"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	_, err := client.CreateOrder(context.Background(), testDraft())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "payment declined" {
		t.Fatalf("expected message preserved, got %q", apiErr.Message)
	}
}

func TestNonSuccessStatus_DetailFieldAlsoAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "kitchen on fire"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	err := client.ConfirmOrder(context.Background(), "o1", "p1")

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "kitchen on fire" {
		t.Fatalf("expected detail message, got %q", apiErr.Message)
	}
}

func TestGetMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/menu" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"items": [{"id": "bec", "name": "Bacon Egg & Cheese", "price_cents": 650}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k")
	items, err := client.GetMenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "bec" || items[0].PriceCents != 650 {
		t.Fatalf("unexpected menu: %+v", items)
	}
}
