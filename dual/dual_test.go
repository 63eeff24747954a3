// Copyright 2026 Forward ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/forward-ml/dual/dual"
)

// TestDifferentiateExpression verifies an end-to-end forward-mode derivative
// through the public API: f(x) = x·sin(x), f'(x) = sin(x) + x·cos(x).
func TestDifferentiateExpression(t *testing.T) {
	x := 2.0
	z := dual.New(x, 1)
	y := z.Mul(dual.Sin(z))

	if got, want := y.Real(), x*math.Sin(x); got != want {
		t.Errorf("f(2) = %v, want %v", got, want)
	}
	got, want := y.Epsilon(), math.Sin(x)+x*math.Cos(x)
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("f'(2) = %v, want %v", got, want)
	}
}

// TestNarrowing verifies the dual-to-real conversion contract.
func TestNarrowing(t *testing.T) {
	if _, err := dual.ToReal(dual.New(1.0, 0.5)); !errors.Is(err, dual.ErrPrecisionLoss) {
		t.Errorf("expected ErrPrecisionLoss, got %v", err)
	}

	x, err := dual.ToReal(dual.FromReal(math.Pi))
	if err != nil {
		t.Fatalf("ToReal failed: %v", err)
	}
	if x != math.Pi {
		t.Errorf("ToReal = %v, want pi", x)
	}
}

// TestHashContract verifies real-valued duals hash like plain reals.
func TestHashContract(t *testing.T) {
	if dual.Hash(dual.FromReal(2.5)) != dual.HashScalar(2.5) {
		t.Error("real-valued dual must hash like its real part")
	}
	if dual.Hash(dual.New(2.5, 1.0)) == dual.HashScalar(2.5) {
		t.Error("non-real-valued dual should mix in the derivative")
	}
}

// TestCodecThroughFacade round-trips a value through the stream API.
func TestCodecThroughFacade(t *testing.T) {
	var buf bytes.Buffer
	z := dual.New(-1.25, 4.0)
	if err := dual.Write(&buf, z); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := dual.Read[float64](&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !dual.EqTotal(z, got) {
		t.Errorf("round trip = %v, want %v", got, z)
	}
}

// TestRegistryThroughFacade verifies the derivative registry is exposed.
func TestRegistryThroughFacade(t *testing.T) {
	reg := dual.NewRegistry()
	z, err := reg.Apply("exp", dual.New(0.0, 1.0))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if z.Real() != 1 || z.Epsilon() != 1 {
		t.Errorf("exp(0) = %v, want 1 + 1ε", z)
	}

	if _, err := reg.Apply("gamma", dual.New(1.0, 1.0)); !errors.Is(err, dual.ErrUnknownFunc) {
		t.Errorf("expected ErrUnknownFunc, got %v", err)
	}
}

// TestFormattingModes verifies both display modes through the facade.
func TestFormattingModes(t *testing.T) {
	z := dual.New(2.0, -3.0)
	if got := z.String(); got != "2 - 3ε" {
		t.Errorf("String() = %q", got)
	}
	if got := z.CompactString(); got != "2-3ε" {
		t.Errorf("CompactString() = %q", got)
	}
}
