package checkout

import (
	"errors"
	"strings"
	"sync/atomic"

	"bodega-storefront/internal/cart"
	"bodega-storefront/internal/domain"
)

var ErrIllegalTransition = errors.New("illegal checkout step transition")

// ValidationError reports a missing or invalid required field. It is
// resolved entirely inside the session; no remote call is made for it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Session is one attempt to turn the cart into a paid order. It is created
// when checkout opens and discarded when checkout closes or completes;
// closing at a non-terminal step simply drops the session and everything
// typed into it. The cart itself outlives the session.
//
// A session is driven from a single goroutine; only the submitting flag is
// shared with the pipeline run.
type Session struct {
	cart       *cart.Store
	step       Step
	customer   domain.CustomerInfo
	payment    domain.PaymentInput
	lastErr    error
	submitting atomic.Bool
}

func NewSession(c *cart.Store) *Session {
	return &Session{cart: c, step: StepCustomerInfo}
}

func (s *Session) Step() Step {
	return s.step
}

// TotalCents reads through to the live cart rather than a snapshot, so the
// total shown at payment time always matches what the pipeline will charge.
func (s *Session) TotalCents() int64 {
	return s.cart.TotalCents()
}

func (s *Session) Cart() *cart.Store {
	return s.cart
}

func (s *Session) CustomerInfo() domain.CustomerInfo {
	return s.customer
}

func (s *Session) PaymentInput() domain.PaymentInput {
	return s.payment
}

func (s *Session) LastErr() error {
	return s.lastErr
}

// SubmitCustomerInfo validates the customer form and advances to the
// payment step. On a validation failure the session stays where it is and
// the error is retained for display.
func (s *Session) SubmitCustomerInfo(info domain.CustomerInfo) error {
	if !canTransition(s.step, StepPayment) {
		return ErrIllegalTransition
	}
	if err := validateCustomerInfo(info); err != nil {
		s.lastErr = err
		return err
	}
	s.customer = info
	s.lastErr = nil
	s.step = StepPayment
	return nil
}

// SetPaymentInput records the payment form fields. They survive a Back to
// the customer info step.
func (s *Session) SetPaymentInput(p domain.PaymentInput) {
	s.payment = p
}

// Back returns from the payment step to the customer info step, keeping
// everything already entered.
func (s *Session) Back() error {
	if !canTransition(s.step, StepCustomerInfo) {
		return ErrIllegalTransition
	}
	s.step = StepCustomerInfo
	s.lastErr = nil
	return nil
}

// Confirm moves the session to its terminal step. Only a fully successful
// pipeline run calls this; local validation alone never does.
func (s *Session) Confirm() error {
	if !canTransition(s.step, StepConfirmed) {
		return ErrIllegalTransition
	}
	s.step = StepConfirmed
	s.lastErr = nil
	return nil
}

// StartSubmit flips the submitting flag. It reports false when a pipeline
// run is already outstanding for this session.
func (s *Session) StartSubmit() bool {
	return s.submitting.CompareAndSwap(false, true)
}

func (s *Session) FinishSubmit() {
	s.submitting.Store(false)
}

func (s *Session) Submitting() bool {
	return s.submitting.Load()
}

func validateCustomerInfo(info domain.CustomerInfo) *ValidationError {
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Email) == "" ||
		strings.TrimSpace(info.Phone) == "" {
		return &ValidationError{Message: "name, email and phone are required"}
	}
	if info.OrderType == domain.OrderTypeDelivery && strings.TrimSpace(info.Address) == "" {
		return &ValidationError{Message: "delivery address is required for delivery orders"}
	}
	return nil
}
