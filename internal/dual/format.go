package dual

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Rendering produces a token sequence that the consumer joins or streams:
// either the epsilon form "re + duε" (sign folded into the token, magnitude
// shown) or, when the derivative part is non-finite while the real part is
// ordinary, the constructor form "Dual(re, du)". Verbose mode prints each
// component with shortest round-trip precision; compact mode truncates to
// four significant digits.

const compactPrec = 4

// String renders z in verbose mode.
func (z Dual[T]) String() string {
	return strings.Join(appendTokens(nil, z, false), "")
}

// CompactString renders z in compact mode.
func (z Dual[T]) CompactString() string {
	return strings.Join(appendTokens(nil, z, true), "")
}

// Render writes the token sequence for z to w. The compact flag selects the
// terser number formatting for both components.
func Render[T Float](w io.Writer, z Dual[T], compact bool) error {
	for _, tok := range appendTokens(nil, z, compact) {
		if _, err := io.WriteString(w, tok); err != nil {
			return err
		}
	}
	return nil
}

func appendTokens[T Float](dst []string, z Dual[T], compact bool) []string {
	re, du := float64(z.re), float64(z.du)

	if !math.IsNaN(re) && (math.IsInf(du, 0) || math.IsNaN(du)) {
		return append(dst,
			"Dual(", formatScalar(z.re, compact), ", ", formatScalar(z.du, compact), ")")
	}

	sign := " + "
	if math.Signbit(du) {
		sign = " - "
	}
	if compact {
		sign = strings.TrimSpace(sign)
	}
	mag := T(math.Abs(du))
	return append(dst, formatScalar(z.re, compact), sign, formatScalar(mag, compact), "ε")
}

func formatScalar[T Float](x T, compact bool) string {
	prec := -1
	if compact {
		prec = compactPrec
	}
	bitSize := 64
	if inferDataType[T]() == Float32 {
		bitSize = 32
	}
	return strconv.FormatFloat(float64(x), 'g', prec, bitSize)
}
