package dual

import "math"

// Arithmetic follows the forward-mode propagation rules: linearity for
// addition, the product rule for multiplication, the quotient rule for
// division. Every operation is pure and IEEE exception-free; NaN and
// infinities flow through instead of raising.

// Neg returns -z.
func (z Dual[T]) Neg() Dual[T] {
	return Dual[T]{re: -z.re, du: -z.du}
}

// Conj returns the conjugate (re, -du).
func (z Dual[T]) Conj() Dual[T] {
	return Dual[T]{re: z.re, du: -z.du}
}

// Abs returns the Euclidean magnitude of the pair, hypot(re, du).
func (z Dual[T]) Abs() T {
	return T(math.Hypot(float64(z.re), float64(z.du)))
}

// Abs2 returns the squared magnitude re² + du², avoiding the sqrt in Abs.
func (z Dual[T]) Abs2() T {
	return z.re*z.re + z.du*z.du
}

// Add returns z + w.
func (z Dual[T]) Add(w Dual[T]) Dual[T] {
	return Dual[T]{re: z.re + w.re, du: z.du + w.du}
}

// Sub returns z - w.
func (z Dual[T]) Sub(w Dual[T]) Dual[T] {
	return Dual[T]{re: z.re - w.re, du: z.du - w.du}
}

// Mul returns z * w using the product rule.
func (z Dual[T]) Mul(w Dual[T]) Dual[T] {
	return Dual[T]{
		re: z.re * w.re,
		du: z.du*w.re + z.re*w.du,
	}
}

// Div returns z / w using the quotient rule.
func (z Dual[T]) Div(w Dual[T]) Dual[T] {
	return Dual[T]{
		re: z.re / w.re,
		du: (z.du*w.re - z.re*w.du) / (w.re * w.re),
	}
}

// Inv returns the reciprocal 1/z. The derivative is -du/re², which is what
// the identity conj(z)/re² expands to.
func (z Dual[T]) Inv() Dual[T] {
	return Dual[T]{
		re: 1 / z.re,
		du: -z.du / (z.re * z.re),
	}
}

// Scale returns x * z for a plain real x.
func (z Dual[T]) Scale(x T) Dual[T] {
	return Dual[T]{re: x * z.re, du: x * z.du}
}

// DivScalar returns z / x for a plain real x.
func (z Dual[T]) DivScalar(x T) Dual[T] {
	return Dual[T]{re: z.re / x, du: z.du / x}
}

// ScalarDiv returns x / w for a plain real x, via the reciprocal.
func ScalarDiv[T Float](x T, w Dual[T]) Dual[T] {
	return w.Inv().Scale(x)
}

// Pow returns z ** w for a dual exponent, using the generalized power rule
//
//	d(a^b) = b·a^(b-1)·da + a^b·ln(a)·db
//
// which reduces to the ordinary power rule when w is real-valued.
func (z Dual[T]) Pow(w Dual[T]) Dual[T] {
	a, ad := float64(z.re), float64(z.du)
	b, bd := float64(w.re), float64(w.du)

	re := math.Pow(a, b)
	du := ad * b * math.Pow(a, b-1)
	if bd != 0 {
		du += bd * re * math.Log(a)
	}
	return Dual[T]{re: T(re), du: T(du)}
}

// PowReal returns z ** p for a plain real exponent.
func (z Dual[T]) PowReal(p T) Dual[T] {
	a, ad := float64(z.re), float64(z.du)
	return Dual[T]{
		re: T(math.Pow(a, float64(p))),
		du: T(ad * float64(p) * math.Pow(a, float64(p)-1)),
	}
}

// Sqrt returns the square root with its chain-rule derivative du/(2·sqrt(re)).
// At re == 0 the derivative follows IEEE division semantics (±Inf or NaN).
func Sqrt[T Float](z Dual[T]) Dual[T] {
	s := math.Sqrt(float64(z.re))
	return Dual[T]{
		re: T(s),
		du: T(float64(z.du) / (2 * s)),
	}
}

// Cbrt returns the cube root with its chain-rule derivative du/(3·cbrt(re)²).
func Cbrt[T Float](z Dual[T]) Dual[T] {
	c := math.Cbrt(float64(z.re))
	return Dual[T]{
		re: T(c),
		du: T(float64(z.du) / (3 * c * c)),
	}
}
