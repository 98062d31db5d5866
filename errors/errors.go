package errors

import "fmt"

var (
	ErrEmptySend       = fmt.Errorf("nothing to send")
	ErrSendInFlight    = fmt.Errorf("a send is already in flight")
	ErrLoginRequired   = fmt.Errorf("login required")
	ErrVerifyInFlight  = fmt.Errorf("a payment verification is already in flight")
	ErrPaymentDeclined = fmt.Errorf("payment declined")
	ErrInvalidProduct  = fmt.Errorf("invalid product")
	ErrInvalidEmail    = fmt.Errorf("invalid email")
	ErrTokenGeneration = fmt.Errorf("token generation failed")
	ErrEmptyWords      = fmt.Errorf("no words have been found")
	ErrEmptyReply      = fmt.Errorf("assistant returned no text")
)
