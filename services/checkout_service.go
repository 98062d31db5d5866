//go:generate go run go.uber.org/mock/mockgen -source=checkout_service.go -destination=../mocks/mock_payment_verifier.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mongolshop/domain"
	"mongolshop/errors"
)

// IPaymentVerifier is the external confirmation collaborator. The
// production integration would be a gateway callback (QPay, SocialPay);
// the engine only awaits its verdict and never fabricates one.
type IPaymentVerifier interface {
	Verify(ctx context.Context, reference string, amount int64) error
}

// MockGateway stands in for a real payment gateway: it confirms every
// payment after a fixed artificial delay.
type MockGateway struct {
	Delay time.Duration
}

func (g MockGateway) Verify(ctx context.Context, _ string, _ int64) error {
	select {
	case <-time.After(g.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CheckoutService drives the QR payment flow:
// AwaitingPayment -> Verifying -> Confirmed, with Failed reachable from
// Verifying and an explicit Retry back to AwaitingPayment. At most one
// verification is outstanding at a time.
type CheckoutService struct {
	sessions ISessionService
	cart     ICartService
	verifier IPaymentVerifier
	log      *slog.Logger

	mu        sync.Mutex
	state     domain.CheckoutState
	reference string
	amount    int64
}

func NewCheckoutService(sessions ISessionService, cart ICartService, verifier IPaymentVerifier, log *slog.Logger) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		cart:     cart,
		verifier: verifier,
		log:      log,
		state:    domain.CheckoutIdle,
	}
}

// Begin opens (or re-opens) the flow. A current user is required; the
// flow never starts without one. Entering from any settled state resets
// to AwaitingPayment with a fresh reference derived from the total.
func (s *CheckoutService) Begin() (string, int64, error) {
	_, ok, err := s.sessions.Current()
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, errors.ErrLoginRequired
	}

	cart, err := s.cart.Get()
	if err != nil {
		return "", 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.CheckoutVerifying {
		return "", 0, errors.ErrVerifyInFlight
	}
	s.amount = cart.Total()
	s.reference = domain.PaymentReference(s.amount)
	s.state = domain.CheckoutAwaitingPayment
	return s.reference, s.amount, nil
}

// Verify awaits the external confirmation. On success the transaction
// is terminal: the cart is cleared and the flow closes. On failure the
// flow lands in Failed and the caller may Retry.
func (s *CheckoutService) Verify(ctx context.Context) error {
	s.mu.Lock()
	if s.state == domain.CheckoutVerifying {
		s.mu.Unlock()
		return errors.ErrVerifyInFlight
	}
	if s.state != domain.CheckoutAwaitingPayment {
		s.mu.Unlock()
		return fmt.Errorf("cannot verify from state %q", s.state)
	}
	s.state = domain.CheckoutVerifying
	reference, amount := s.reference, s.amount
	s.mu.Unlock()

	err := s.verifier.Verify(ctx, reference, amount)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = domain.CheckoutFailed
		s.log.Warn("Payment verification failed", "reference", reference, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrPaymentDeclined, err)
	}

	if _, clearErr := s.cart.Clear(); clearErr != nil {
		// The payment is confirmed regardless; a cart left behind is
		// visible and re-clearable, so report and keep the Confirmed state.
		s.log.Error("cart clear after confirmation failed", "error", clearErr)
	}
	s.state = domain.CheckoutConfirmed
	s.log.Info("Payment confirmed", "reference", reference, "amount", amount)
	return nil
}

// Retry re-arms a failed flow for another verification attempt.
func (s *CheckoutService) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.CheckoutFailed {
		return fmt.Errorf("cannot retry from state %q", s.state)
	}
	s.state = domain.CheckoutAwaitingPayment
	return nil
}

func (s *CheckoutService) State() domain.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
