// Copyright 2026 Forward ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/forward-ml/dual/internal/dual"
)

// Sqrt returns the square root of z with its chain-rule derivative.
func Sqrt[T Float](z Dual[T]) Dual[T] { return dual.Sqrt(z) }

// Cbrt returns the cube root of z with its chain-rule derivative.
func Cbrt[T Float](z Dual[T]) Dual[T] { return dual.Cbrt(z) }

// Sin returns the sine of z.
func Sin[T Float](z Dual[T]) Dual[T] { return dual.Sin(z) }

// Cos returns the cosine of z.
func Cos[T Float](z Dual[T]) Dual[T] { return dual.Cos(z) }

// Tan returns the tangent of z.
func Tan[T Float](z Dual[T]) Dual[T] { return dual.Tan(z) }

// Asin returns the arcsine of z.
func Asin[T Float](z Dual[T]) Dual[T] { return dual.Asin(z) }

// Acos returns the arccosine of z.
func Acos[T Float](z Dual[T]) Dual[T] { return dual.Acos(z) }

// Atan returns the arctangent of z.
func Atan[T Float](z Dual[T]) Dual[T] { return dual.Atan(z) }

// Sinh returns the hyperbolic sine of z.
func Sinh[T Float](z Dual[T]) Dual[T] { return dual.Sinh(z) }

// Cosh returns the hyperbolic cosine of z.
func Cosh[T Float](z Dual[T]) Dual[T] { return dual.Cosh(z) }

// Tanh returns the hyperbolic tangent of z.
func Tanh[T Float](z Dual[T]) Dual[T] { return dual.Tanh(z) }

// Asinh returns the inverse hyperbolic sine of z.
func Asinh[T Float](z Dual[T]) Dual[T] { return dual.Asinh(z) }

// Acosh returns the inverse hyperbolic cosine of z.
func Acosh[T Float](z Dual[T]) Dual[T] { return dual.Acosh(z) }

// Atanh returns the inverse hyperbolic tangent of z.
func Atanh[T Float](z Dual[T]) Dual[T] { return dual.Atanh(z) }

// Exp returns e**z.
func Exp[T Float](z Dual[T]) Dual[T] { return dual.Exp(z) }

// Expm1 returns e**z - 1, precise near zero.
func Expm1[T Float](z Dual[T]) Dual[T] { return dual.Expm1(z) }

// Log returns the natural logarithm of z.
func Log[T Float](z Dual[T]) Dual[T] { return dual.Log(z) }

// Log2 returns the base-2 logarithm of z.
func Log2[T Float](z Dual[T]) Dual[T] { return dual.Log2(z) }

// Log10 returns the base-10 logarithm of z.
func Log10[T Float](z Dual[T]) Dual[T] { return dual.Log10(z) }

// Log1p returns log(1 + z), precise near zero.
func Log1p[T Float](z Dual[T]) Dual[T] { return dual.Log1p(z) }

// Erf returns the error function of z.
func Erf[T Float](z Dual[T]) Dual[T] { return dual.Erf(z) }

// Erfc returns the complementary error function of z.
func Erfc[T Float](z Dual[T]) Dual[T] { return dual.Erfc(z) }

// Func is a lifted elementary function on float64 duals.
type Func = dual.Func

// Registry maps elementary function names to their lifted forms.
type Registry = dual.Registry

// NewRegistry creates a registry populated from the built-in
// derivative-rule table.
//
// Example:
//
//	reg := dual.NewRegistry()
//	y, err := reg.Apply("sin", dual.New(1.0, 1.0))
func NewRegistry() *Registry {
	return dual.NewRegistry()
}
