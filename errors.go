package marina

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no boat has the requested name.
	ErrNotFound = errors.New("no boat with that name")
	// ErrCapacity is returned when the registry already holds Capacity boats.
	ErrCapacity = errors.New("maximum number of boats reached")
	// ErrNonPositivePayment is returned for payments of zero or less.
	ErrNonPositivePayment = errors.New("payment amount must be positive")
)

// OverpaymentError reports a payment larger than the amount owed.
type OverpaymentError struct {
	Name   string
	Amount Money
	Owed   Money
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("that is more than the amount owed, %s", e.Owed)
}

// RecordError reports a boat record that could not be parsed.
type RecordError struct {
	Line   int    // Line number in the boats file, 0 if the record did not come from a file.
	Record string // Record is the raw text.
	Err    error
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid boat record %q: %v", e.Line, e.Record, e.Err)
	}
	return fmt.Sprintf("invalid boat record %q: %v", e.Record, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
