package dual

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrPrecisionLoss = errors.New("nonzero derivative part cannot narrow to a real")
	ErrShortBuffer   = errors.New("encoded dual is truncated")
	ErrUnknownFunc   = errors.New("function not registered")
)

// ConversionError reports a failed dual-to-real narrowing with the value
// that could not be narrowed.
type ConversionError struct {
	Re float64 // real part of the offending value
	Du float64 // nonzero derivative part
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert Dual(%v, %v) to a real: %v", e.Re, e.Du, ErrPrecisionLoss)
}

// Unwrap allows errors.Is(err, ErrPrecisionLoss).
func (e *ConversionError) Unwrap() error {
	return ErrPrecisionLoss
}
