package order

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
)

var (
	ErrInvalidDraft = errors.New("invalid order draft")
)

const (
	estimatedMinutesDelivery = 25
	estimatedMinutesPickup   = 15
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Confirm(ctx context.Context, id, paymentID string) error
}

type paymentGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
}

type Service struct {
	repo     orderRepo
	payments paymentGetter
	logger   *log.Logger
}

func New(repo orderRepo, payments paymentGetter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, payments: payments, logger: logger}
}

// Create validates a submitted draft, assigns an order id and stores the
// order as pending.
func (s *Service) Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	o := domain.Order{
		ID:               newOrderID(),
		Draft:            draft,
		Status:           domain.OrderStatusPending,
		EstimatedMinutes: estimatedMinutesPickup,
		CreatedAt:        time.Now().UTC(),
	}
	if draft.OrderType == domain.OrderTypeDelivery {
		o.EstimatedMinutes = estimatedMinutesDelivery
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	s.logger.Printf("created order %s: %s - %s, total %d cents",
		o.ID, draft.Customer.Name, draft.OrderType, draft.TotalCents)
	return &o, nil
}

// Confirm marks a pending order confirmed with the payment that covered it.
// The payment must have been processed first.
func (s *Service) Confirm(ctx context.Context, orderID, paymentID string) (*domain.Order, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(paymentID) == "" {
		return nil, fmt.Errorf("%w: order id and payment id are required", ErrInvalidDraft)
	}
	if _, err := s.payments.GetByID(ctx, paymentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("payment %s: %w", paymentID, domain.ErrNotFound)
		}
		return nil, err
	}
	if err := s.repo.Confirm(ctx, orderID, paymentID); err != nil {
		return nil, err
	}
	s.logger.Printf("confirmed order %s with payment %s", orderID, paymentID)
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func validateDraft(draft domain.OrderDraft) error {
	if len(draft.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidDraft)
	}
	var subtotal int64
	for _, line := range draft.Items {
		if line.Quantity < 1 {
			return fmt.Errorf("%w: item %s has quantity %d", ErrInvalidDraft, line.ID, line.Quantity)
		}
		if line.PriceCents < 0 {
			return fmt.Errorf("%w: item %s has negative price", ErrInvalidDraft, line.ID)
		}
		if line.TotalCents != line.PriceCents*int64(line.Quantity) {
			return fmt.Errorf("%w: item %s line total mismatch", ErrInvalidDraft, line.ID)
		}
		subtotal += line.TotalCents
	}
	if draft.SubtotalCents != subtotal || draft.TotalCents != subtotal+draft.TaxCents {
		return fmt.Errorf("%w: totals do not add up", ErrInvalidDraft)
	}
	c := draft.Customer
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: customer name, email and phone are required", ErrInvalidDraft)
	}
	switch draft.OrderType {
	case domain.OrderTypeDelivery:
		if strings.TrimSpace(c.Address) == "" {
			return fmt.Errorf("%w: delivery orders need an address", ErrInvalidDraft)
		}
	case domain.OrderTypePickup:
	default:
		return fmt.Errorf("%w: unknown order type %q", ErrInvalidDraft, draft.OrderType)
	}
	return nil
}

const orderIDLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderID builds ids like BBG1756600000K37, the format customers see on
// their receipts.
func newOrderID() string {
	return fmt.Sprintf("BBG%d%c%02d",
		time.Now().Unix(),
		orderIDLetters[rand.Intn(len(orderIDLetters))],
		10+rand.Intn(90))
}
