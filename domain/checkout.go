package domain

import "fmt"

// CheckoutState is the payment flow position. The happy path is
// AwaitingPayment -> Verifying -> Confirmed; a declined or timed-out
// verification lands in Failed, from which the flow can be retried.
type CheckoutState string

const (
	CheckoutIdle            CheckoutState = "idle"
	CheckoutAwaitingPayment CheckoutState = "awaiting_payment"
	CheckoutVerifying       CheckoutState = "verifying"
	CheckoutConfirmed       CheckoutState = "confirmed"
	CheckoutFailed          CheckoutState = "failed"
)

// PaymentReference builds the deterministic out-of-band reference shown
// to the customer (encoded as a QR payload by the presentation layer).
func PaymentReference(total int64) string {
	return fmt.Sprintf("mongolshop_pay_%d", total)
}
