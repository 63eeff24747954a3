// Copyright 2026 Forward ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/forward-ml/dual/internal/dual"
)

// Float is the constraint for scalar types a dual number can carry.
type Float = dual.Float

// Dual is an immutable (value, derivative) pair. All arithmetic methods
// (Add, Sub, Mul, Div, Neg, Conj, Inv, Pow, ...) are available on the type;
// see the internal package documentation for the propagation rules.
type Dual[T dual.Float] = dual.Dual[T]

// DataType is runtime type information for dual components.
type DataType = dual.DataType

// Supported scalar types.
const (
	Float32 = dual.Float32
	Float64 = dual.Float64
)

// Common errors.
var (
	ErrPrecisionLoss = dual.ErrPrecisionLoss
	ErrShortBuffer   = dual.ErrShortBuffer
	ErrUnknownFunc   = dual.ErrUnknownFunc
)

// ConversionError reports a failed dual-to-real narrowing.
type ConversionError = dual.ConversionError

// New creates a dual number from its real and derivative parts.
func New[T Float](re, du T) Dual[T] {
	return dual.New(re, du)
}

// FromReal embeds a plain real as a dual with zero derivative.
func FromReal[T Float](x T) Dual[T] {
	return dual.FromReal(x)
}

// Convert re-coerces a dual to a different scalar width, componentwise.
func Convert[To, From Float](z Dual[From]) Dual[To] {
	return dual.Convert[To](z)
}

// ToReal narrows z to its real part, failing with ErrPrecisionLoss when the
// derivative part is nonzero.
func ToReal[T Float](z Dual[T]) (T, error) {
	return dual.ToReal(z)
}

// ScalarDiv returns x / w for a plain real x.
func ScalarDiv[T Float](x T, w Dual[T]) Dual[T] {
	return dual.ScalarDiv(x, w)
}

// Eq reports componentwise IEEE equality (NaN != NaN, ±0 equal).
func Eq[T Float](z, w Dual[T]) bool {
	return dual.Eq(z, w)
}

// EqTotal reports componentwise bit equality (reflexive under NaN, ±0
// distinguished). Hash is consistent with this relation.
func EqTotal[T Float](z, w Dual[T]) bool {
	return dual.EqTotal(z, w)
}

// EqReal reports whether z equals the plain real x; symmetric in both
// operand orders.
func EqReal[T Float](z Dual[T], x T) bool {
	return dual.EqReal(z, x)
}

// Hash returns a hash consistent with EqTotal; real-valued duals hash
// identically to their plain real under HashScalar.
func Hash[T Float](z Dual[T]) uint64 {
	return dual.Hash(z)
}

// HashScalar returns the hash of a plain real under the same scheme as Hash.
func HashScalar[T Float](x T) uint64 {
	return dual.HashScalar(x)
}
