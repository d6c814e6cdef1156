package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bodega-storefront/internal/domain"
)

type stubRepo struct {
	created   *domain.Payment
	createErr error
}

func (s *stubRepo) Create(_ context.Context, p domain.Payment) error {
	s.created = &p
	return s.createErr
}

type stubOrders struct {
	order *domain.Order
	err   error
}

func (s *stubOrders) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:     "BBG1",
		Status: domain.OrderStatusPending,
		Draft:  domain.OrderDraft{TotalCents: 1300},
	}
}

func TestProcess_ChargesStoredOrderTotal(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubOrders{order: pendingOrder()}, 0, nil)

	p, err := svc.Process(context.Background(), "BBG1", domain.PaymentInput{
		Method:    domain.PaymentMethodCard,
		CardToken: "tok_4242",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(p.ID, "pay_") {
		t.Fatalf("expected pay_ id, got %q", p.ID)
	}
	if p.AmountCents != 1300 {
		t.Fatalf("expected amount from stored order, got %d", p.AmountCents)
	}
	if p.OrderID != "BBG1" || p.Status != "completed" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if repo.created == nil || repo.created.ID != p.ID {
		t.Fatalf("payment not stored")
	}
}

func TestProcess_CashNeedsNoToken(t *testing.T) {
	svc := New(&stubRepo{}, &stubOrders{order: pendingOrder()}, 0, nil)

	if _, err := svc.Process(context.Background(), "BBG1", domain.PaymentInput{Method: domain.PaymentMethodCash}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcess_InvalidInput(t *testing.T) {
	svc := New(&stubRepo{}, &stubOrders{order: pendingOrder()}, 0, nil)

	cases := map[string]struct {
		orderID string
		in      domain.PaymentInput
	}{
		"missing order id": {"", domain.PaymentInput{Method: domain.PaymentMethodCash}},
		"card no token":    {"BBG1", domain.PaymentInput{Method: domain.PaymentMethodCard}},
		"unknown method":   {"BBG1", domain.PaymentInput{Method: "barter"}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Process(context.Background(), c.orderID, c.in); !errors.Is(err, ErrInvalidPayment) {
				t.Fatalf("expected ErrInvalidPayment, got %v", err)
			}
		})
	}
}

func TestProcess_UnknownOrder(t *testing.T) {
	svc := New(&stubRepo{}, &stubOrders{err: domain.ErrNotFound}, 0, nil)

	_, err := svc.Process(context.Background(), "BBGmissing", domain.PaymentInput{Method: domain.PaymentMethodCash})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProcess_DeclineRateOneAlwaysDeclines(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubOrders{order: pendingOrder()}, 1, nil)

	_, err := svc.Process(context.Background(), "BBG1", domain.PaymentInput{Method: domain.PaymentMethodCash})
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if repo.created != nil {
		t.Fatalf("declined payment must not be stored")
	}
}
