package dual

import "math"

// apply lifts a scalar function f with derivative fp into dual arithmetic:
// the chain rule sends (re, du) to (f(re), du·fp(re)). Every elementary
// function below is this one template instantiated with a different rule.
func apply[T Float](z Dual[T], f, fp func(float64) float64) Dual[T] {
	re := float64(z.re)
	return Dual[T]{
		re: T(f(re)),
		du: T(float64(z.du) * fp(re)),
	}
}

// Closed-form derivatives for the elementary functions that do not already
// have one in the math package.
func dCos(x float64) float64   { return -math.Sin(x) }
func dTan(x float64) float64   { c := math.Cos(x); return 1 / (c * c) }
func dAsin(x float64) float64  { return 1 / math.Sqrt(1-x*x) }
func dAcos(x float64) float64  { return -1 / math.Sqrt(1-x*x) }
func dAtan(x float64) float64  { return 1 / (1 + x*x) }
func dTanh(x float64) float64  { c := math.Cosh(x); return 1 / (c * c) }
func dAsinh(x float64) float64 { return 1 / math.Sqrt(x*x+1) }
func dAcosh(x float64) float64 { return 1 / math.Sqrt(x*x-1) }
func dAtanh(x float64) float64 { return 1 / (1 - x*x) }
func dLog(x float64) float64   { return 1 / x }
func dLog2(x float64) float64  { return 1 / (x * math.Ln2) }
func dLog10(x float64) float64 { return 1 / (x * math.Ln10) }
func dLog1p(x float64) float64 { return 1 / (1 + x) }
func dErf(x float64) float64   { return 2 / math.SqrtPi * math.Exp(-x*x) }
func dErfc(x float64) float64  { return -2 / math.SqrtPi * math.Exp(-x*x) }

// rule pairs an elementary function name with the function and its
// closed-form derivative.
type rule struct {
	name  string
	fn    func(float64) float64
	deriv func(float64) float64
}

// elementaryRules is the derivative-rule table. It is read once to build the
// Registry and is otherwise inert. The exported wrappers call apply with the
// same function pairs, so both dispatch paths share one set of rules.
var elementaryRules = []rule{
	{"sin", math.Sin, math.Cos},
	{"cos", math.Cos, dCos},
	{"tan", math.Tan, dTan},
	{"asin", math.Asin, dAsin},
	{"acos", math.Acos, dAcos},
	{"atan", math.Atan, dAtan},
	{"sinh", math.Sinh, math.Cosh},
	{"cosh", math.Cosh, math.Sinh},
	{"tanh", math.Tanh, dTanh},
	{"asinh", math.Asinh, dAsinh},
	{"acosh", math.Acosh, dAcosh},
	{"atanh", math.Atanh, dAtanh},
	{"exp", math.Exp, math.Exp},
	{"expm1", math.Expm1, math.Exp},
	{"log", math.Log, dLog},
	{"log2", math.Log2, dLog2},
	{"log10", math.Log10, dLog10},
	{"log1p", math.Log1p, dLog1p},
	{"erf", math.Erf, dErf},
	{"erfc", math.Erfc, dErfc},
}

// Sin returns the sine of z.
func Sin[T Float](z Dual[T]) Dual[T] { return apply(z, math.Sin, math.Cos) }

// Cos returns the cosine of z.
func Cos[T Float](z Dual[T]) Dual[T] { return apply(z, math.Cos, dCos) }

// Tan returns the tangent of z.
func Tan[T Float](z Dual[T]) Dual[T] { return apply(z, math.Tan, dTan) }

// Asin returns the arcsine of z.
func Asin[T Float](z Dual[T]) Dual[T] { return apply(z, math.Asin, dAsin) }

// Acos returns the arccosine of z.
func Acos[T Float](z Dual[T]) Dual[T] { return apply(z, math.Acos, dAcos) }

// Atan returns the arctangent of z.
func Atan[T Float](z Dual[T]) Dual[T] { return apply(z, math.Atan, dAtan) }

// Sinh returns the hyperbolic sine of z.
func Sinh[T Float](z Dual[T]) Dual[T] { return apply(z, math.Sinh, math.Cosh) }

// Cosh returns the hyperbolic cosine of z.
func Cosh[T Float](z Dual[T]) Dual[T] { return apply(z, math.Cosh, math.Sinh) }

// Tanh returns the hyperbolic tangent of z.
func Tanh[T Float](z Dual[T]) Dual[T] { return apply(z, math.Tanh, dTanh) }

// Asinh returns the inverse hyperbolic sine of z.
func Asinh[T Float](z Dual[T]) Dual[T] { return apply(z, math.Asinh, dAsinh) }

// Acosh returns the inverse hyperbolic cosine of z.
func Acosh[T Float](z Dual[T]) Dual[T] { return apply(z, math.Acosh, dAcosh) }

// Atanh returns the inverse hyperbolic tangent of z.
func Atanh[T Float](z Dual[T]) Dual[T] { return apply(z, math.Atanh, dAtanh) }

// Exp returns e**z.
func Exp[T Float](z Dual[T]) Dual[T] { return apply(z, math.Exp, math.Exp) }

// Expm1 returns e**z - 1 with the precision of math.Expm1 near zero.
func Expm1[T Float](z Dual[T]) Dual[T] { return apply(z, math.Expm1, math.Exp) }

// Log returns the natural logarithm of z.
func Log[T Float](z Dual[T]) Dual[T] { return apply(z, math.Log, dLog) }

// Log2 returns the base-2 logarithm of z.
func Log2[T Float](z Dual[T]) Dual[T] { return apply(z, math.Log2, dLog2) }

// Log10 returns the base-10 logarithm of z.
func Log10[T Float](z Dual[T]) Dual[T] { return apply(z, math.Log10, dLog10) }

// Log1p returns log(1 + z) with the precision of math.Log1p near zero.
func Log1p[T Float](z Dual[T]) Dual[T] { return apply(z, math.Log1p, dLog1p) }

// Erf returns the error function of z.
func Erf[T Float](z Dual[T]) Dual[T] { return apply(z, math.Erf, dErf) }

// Erfc returns the complementary error function of z.
func Erfc[T Float](z Dual[T]) Dual[T] { return apply(z, math.Erfc, dErfc) }
