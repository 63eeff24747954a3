// Package dual implements the dual-number pair type used for forward-mode
// automatic differentiation.
package dual

import "math"

// Float is a constraint for the scalar types a dual number can carry.
type Float interface {
	~float32 | ~float64
}

// Dual is an immutable pair (re, du) where re is the primary value and du is
// the infinitesimal/derivative coefficient. Every operation returns a new
// value; a Dual is never mutated after construction, so values may be shared
// freely across goroutines.
//
// Type Parameters:
//   - T: Scalar type of both components (must satisfy Float)
//
// Example:
//
//	x := dual.New(4.0, 1.0) // seed dx = 1
//	y := dual.Sqrt(x)       // (2, 0.25): value and derivative of sqrt at 4
type Dual[T Float] struct {
	re T
	du T
}

// New creates a dual number from its real and derivative parts.
func New[T Float](re, du T) Dual[T] {
	return Dual[T]{re: re, du: du}
}

// FromReal embeds a plain real as a dual with zero derivative.
func FromReal[T Float](x T) Dual[T] {
	return Dual[T]{re: x}
}

// Convert re-coerces a dual to a different scalar width, componentwise.
// This is the explicit promotion step: code mixing Dual[float32] and
// Dual[float64] converts the narrower operand up front.
func Convert[To, From Float](z Dual[From]) Dual[To] {
	return Dual[To]{re: To(z.re), du: To(z.du)}
}

// Real returns the real (primary) component.
func (z Dual[T]) Real() T {
	return z.re
}

// Epsilon returns the derivative component.
func (z Dual[T]) Epsilon() T {
	return z.du
}

// Reim returns both components as a pair.
func (z Dual[T]) Reim() (re, du T) {
	return z.re, z.du
}

// RealValued reports whether z is behaviorally a plain real (du == 0).
func (z Dual[T]) RealValued() bool {
	return z.du == 0
}

// IntegerValued reports whether z is real-valued with an integral,
// finite real part.
func (z Dual[T]) IntegerValued() bool {
	if !z.RealValued() {
		return false
	}
	re := float64(z.re)
	return !math.IsInf(re, 0) && !math.IsNaN(re) && re == math.Trunc(re)
}

// IsFinite reports whether both components are finite.
func (z Dual[T]) IsFinite() bool {
	re, du := float64(z.re), float64(z.du)
	return !math.IsInf(re, 0) && !math.IsNaN(re) &&
		!math.IsInf(du, 0) && !math.IsNaN(du)
}

// ToReal narrows z to its real part. The narrowing is lossless only when the
// derivative part is exactly zero; otherwise it fails with a ConversionError
// wrapping ErrPrecisionLoss rather than silently truncating.
func ToReal[T Float](z Dual[T]) (T, error) {
	if !z.RealValued() {
		return 0, &ConversionError{Re: float64(z.re), Du: float64(z.du)}
	}
	return z.re, nil
}
