package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"bodega-storefront/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrDeclined       = errors.New("payment declined")
	ErrInvalidPayment = errors.New("invalid payment input")
)

type paymentRepo interface {
	Create(ctx context.Context, p domain.Payment) error
}

type orderGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

// Service simulates a payment provider: it charges the stored order total
// and records the payment. Declines happen at the configured rate, zero by
// default.
type Service struct {
	repo        paymentRepo
	orders      orderGetter
	declineRate float64
	logger      *log.Logger
}

func New(repo paymentRepo, orders orderGetter, declineRate float64, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, orders: orders, declineRate: declineRate, logger: logger}
}

// Process charges the order referenced by orderID. The amount always comes
// from the stored order, never from anything the client sent alongside.
func (s *Service) Process(ctx context.Context, orderID string, in domain.PaymentInput) (*domain.Payment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%w: order id is required", ErrInvalidPayment)
	}
	switch in.Method {
	case domain.PaymentMethodCard:
		if strings.TrimSpace(in.CardToken) == "" {
			return nil, fmt.Errorf("%w: card payments need a card token", ErrInvalidPayment)
		}
	case domain.PaymentMethodCash:
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidPayment, in.Method)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.declineRate > 0 && rand.Float64() < s.declineRate {
		s.logger.Printf("declined payment for order %s", orderID)
		return nil, ErrDeclined
	}

	p := domain.Payment{
		ID:          newPaymentID(),
		OrderID:     order.ID,
		AmountCents: order.Draft.TotalCents,
		Method:      in.Method,
		Status:      "completed",
		ProcessedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}
	s.logger.Printf("processed payment %s: %d cents for order %s", p.ID, p.AmountCents, order.ID)
	return &p, nil
}

func newPaymentID() string {
	return "pay_" + uuid.NewString()[:8]
}
