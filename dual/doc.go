// Copyright 2026 Forward ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides dual numbers for forward-mode automatic
// differentiation.
//
// # Overview
//
// A dual number is an immutable pair (re, du): a value together with the
// derivative coefficient it carries. Arithmetic on duals propagates exact
// first derivatives through every operation (sum, product, quotient, and
// chain rules), so a scalar function evaluated on Dual(x, 1) yields both
// f(x) and f'(x) with no symbolic manipulation or finite differencing.
//
// # Basic Usage
//
//	import "github.com/forward-ml/dual/dual"
//
//	func main() {
//	    // Differentiate f(x) = x·sin(x) at x = 2 by seeding dx = 1.
//	    x := dual.New(2.0, 1.0)
//	    y := x.Mul(dual.Sin(x))
//
//	    fmt.Println(y.Real())    // f(2)
//	    fmt.Println(y.Epsilon()) // f'(2) = sin(2) + 2·cos(2)
//	}
//
// # Semantics
//
// Values are immutable and operations are pure, so duals are safe for
// concurrent use without synchronization. Arithmetic never returns errors:
// NaN, infinities, and signed zeros propagate per IEEE 754. The only
// explicit failure in the package is narrowing a dual with a nonzero
// derivative part back to a plain real (ErrPrecisionLoss).
//
// Mixing scalar widths is explicit: Convert re-coerces a dual between
// float32 and float64 instantiations, and FromReal embeds a plain real as
// a derivative-free dual.
package dual
