package booking

import (
	"errors"
	"fmt"
)

var (
	ErrSlotUnavailable    = errors.New("slot no longer available")
	ErrInvalidSignature   = errors.New("invalid payment signature")
	ErrPaymentNotCaptured = errors.New("payment not captured")
	ErrBookingInProgress  = errors.New("booking already in progress")
	ErrInvalidAmount      = errors.New("amount must be a positive number of minor units")
)

// UpstreamError wraps a failed calendar or payment call.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
