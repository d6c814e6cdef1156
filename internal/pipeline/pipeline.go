package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"bodega-storefront/internal/checkout"
	"bodega-storefront/internal/domain"
	"bodega-storefront/internal/orderapi"
)

// Failure kinds, one per remote step plus the single-flight rejection. The
// three step kinds matter to callers: a confirmation failure means payment
// was already taken and has to be surfaced differently from the other two.
var (
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrPaymentFailed       = errors.New("payment failed")
	ErrConfirmationFailed  = errors.New("order confirmation failed")
	ErrSubmitInFlight      = errors.New("checkout submission already in flight")
	ErrEmptyCart           = errors.New("cart is empty, nothing to submit")
)

// StepError tags a remote failure with the step it happened at. The
// underlying transport reason stays reachable through errors.Is/As and the
// message, so the UI can show which step failed and why.
type StepError struct {
	Kind error
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

type backendClient interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (*orderapi.CreateOrderResponse, error)
	ProcessPayment(ctx context.Context, order orderapi.CreateOrderResponse, payment domain.PaymentInput) (*orderapi.ProcessPaymentResponse, error)
	ConfirmOrder(ctx context.Context, orderID, paymentID string) error
}

// Pipeline turns a cart plus checkout input into a confirmed order through
// three dependent remote calls, issued strictly in sequence. No step runs
// unless the previous one succeeded, each step is attempted exactly once per
// Submit, and the cart is cleared if and only if all three succeed.
type Pipeline struct {
	client backendClient
	logger *log.Logger
}

func New(client backendClient, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Pipeline{client: client, logger: logger}
}

// Submit runs create order -> process payment -> confirm order for the
// session. The cart is snapshotted on entry, so edits made while the calls
// are in flight cannot change what is being paid for. On full success the
// cart is cleared and the session advances to its terminal step.
//
// Cancelling ctx aborts the run; the in-progress step reports its own
// failure kind. There are no internal retries, the caller decides whether
// the user may resubmit.
func (p *Pipeline) Submit(ctx context.Context, sess *checkout.Session) (*domain.PipelineResult, error) {
	if sess.Step() != checkout.StepPayment {
		return nil, checkout.ErrIllegalTransition
	}
	if !sess.StartSubmit() {
		return nil, ErrSubmitInFlight
	}
	defer sess.FinishSubmit()

	items := sess.Cart().Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	draft := BuildDraft(items, sess.CustomerInfo(), time.Now().UTC())

	p.logger.Printf("creating order: %d items, total %d cents", len(items), draft.TotalCents)
	created, err := p.client.CreateOrder(ctx, draft)
	if err != nil {
		return nil, &StepError{Kind: ErrOrderCreationFailed, Err: err}
	}

	p.logger.Printf("processing payment for order %s", created.OrderID)
	paid, err := p.client.ProcessPayment(ctx, *created, sess.PaymentInput())
	if err != nil {
		// The order stays unconfirmed server side; no compensating action.
		return nil, &StepError{Kind: ErrPaymentFailed, Err: err}
	}

	p.logger.Printf("confirming order %s with payment %s", created.OrderID, paid.PaymentID)
	if err := p.client.ConfirmOrder(ctx, created.OrderID, paid.PaymentID); err != nil {
		// Payment has already been taken at this point.
		return nil, &StepError{Kind: ErrConfirmationFailed, Err: err}
	}

	sess.Cart().Clear()
	if err := sess.Confirm(); err != nil {
		p.logger.Printf("session confirm after successful pipeline: %v", err)
	}

	return &domain.PipelineResult{
		OrderID:    created.OrderID,
		PaymentID:  paid.PaymentID,
		TotalCents: draft.TotalCents,
	}, nil
}

// BuildDraft denormalizes cart entries into the order-creation request.
// Subtotal and total use the same price-times-quantity formula as the cart
// store, tax is always zero.
func BuildDraft(items []domain.CartItem, customer domain.CustomerInfo, now time.Time) domain.OrderDraft {
	lines := make([]domain.OrderDraftLine, 0, len(items))
	var subtotal int64
	for _, it := range items {
		lines = append(lines, domain.OrderDraftLine{
			ID:         it.ID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
			TotalCents: it.TotalCents(),
		})
		subtotal += it.TotalCents()
	}
	return domain.OrderDraft{
		Items:         lines,
		Customer:      customer,
		OrderType:     customer.OrderType,
		SubtotalCents: subtotal,
		TaxCents:      0,
		TotalCents:    subtotal,
		Timestamp:     now,
	}
}
