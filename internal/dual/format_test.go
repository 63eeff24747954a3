package dual

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringVerbose(t *testing.T) {
	assert.Equal(t, "2 + 3ε", New(2.0, 3.0).String())
	assert.Equal(t, "2 - 3ε", New(2.0, -3.0).String())
	assert.Equal(t, "0 + 0ε", New(0.0, 0.0).String())
	assert.Equal(t, "-1.5 + 0.25ε", New(-1.5, 0.25).String())
}

func TestStringFoldsSignIntoToken(t *testing.T) {
	// The derivative's sign becomes the operator; the magnitude is shown.
	s := New(1.0, -0.5).String()
	assert.Equal(t, "1 - 0.5ε", s)
	assert.NotContains(t, s, "-0.5")

	// A -0 derivative keeps its sign bit.
	assert.Equal(t, "1 - 0ε", New(1.0, math.Copysign(0, -1)).String())
}

func TestStringCompact(t *testing.T) {
	assert.Equal(t, "2+3ε", New(2.0, 3.0).CompactString())
	assert.Equal(t, "2-3ε", New(2.0, -3.0).CompactString())
	assert.Equal(t, "0.3333+1ε", New(1.0/3, 1.0).CompactString())
}

func TestStringNaNRealPart(t *testing.T) {
	// A NaN real part still uses the epsilon form.
	assert.Equal(t, "NaN + 1ε", New(math.NaN(), 1.0).String())
}

func TestStringConstructorFallback(t *testing.T) {
	// Finite real part with a non-finite derivative falls back to the
	// constructor form.
	assert.Equal(t, "Dual(2, +Inf)", New(2.0, math.Inf(1)).String())
	assert.Equal(t, "Dual(2, NaN)", New(2.0, math.NaN()).String())
	assert.Equal(t, "Dual(2, -Inf)", New(2.0, math.Inf(-1)).String())
}

func TestStringInfReal(t *testing.T) {
	assert.Equal(t, "+Inf + 1ε", New(math.Inf(1), 1.0).String())
}

func TestRenderMatchesString(t *testing.T) {
	values := []Dual[float64]{
		New(2.0, 3.0),
		New(-1.5, -0.25),
		New(2.0, math.Inf(1)),
		New(math.NaN(), 1.0),
	}
	for _, z := range values {
		var sb strings.Builder
		require.NoError(t, Render(&sb, z, false))
		assert.Equal(t, z.String(), sb.String())

		sb.Reset()
		require.NoError(t, Render(&sb, z, true))
		assert.Equal(t, z.CompactString(), sb.String())
	}
}

func TestFormattingDeterminism(t *testing.T) {
	z := New(math.Pi, -math.E)
	for i := 0; i < 5; i++ {
		assert.Equal(t, z.String(), New(math.Pi, -math.E).String())
		assert.Equal(t, z.CompactString(), New(math.Pi, -math.E).CompactString())
	}
}

func TestFormatFloat32ShortestRoundTrip(t *testing.T) {
	// float32 components format at 32-bit precision: 0.1 prints as "0.1",
	// not as its float64 expansion.
	assert.Equal(t, "0.1 + 0.2ε", New[float32](0.1, 0.2).String())
}
