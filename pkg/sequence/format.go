package sequence

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Format selects how Query renders a result (spec.md §4.1: "An
// output-formatter layer converts results to rectangular, polar, real,
// imaginary, or text forms on request").
type Format int

const (
	Rectangular Format = iota
	Polar
	Real
	Imaginary
	Text
)

// FormatComplex renders a single complex value per the teacher repository's
// magnitude/phase convention (pkg/util/formatter.go FormatMagnitudePhase),
// generalized to the other four output forms.
func FormatComplex(v complex128, f Format) string {
	switch f {
	case Real:
		return fmt.Sprintf("%.6g", real(v))
	case Imaginary:
		return fmt.Sprintf("%.6g", imag(v))
	case Polar:
		return formatMagnitudePhase(cmplx.Abs(v), cmplx.Phase(v)*180.0/math.Pi)
	case Text:
		return fmt.Sprintf("%.6g%+.6gj", real(v), imag(v))
	default: // Rectangular
		return fmt.Sprintf("%.6g%+.6gj", real(v), imag(v))
	}
}

// FormatTriple renders each component of a Triple as "(x, y, z)".
func FormatTriple(t Triple, f Format) string {
	return fmt.Sprintf("(%s, %s, %s)",
		FormatComplex(t[0], f), FormatComplex(t[1], f), FormatComplex(t[2], f))
}

func formatMagnitudePhase(magnitude, phase float64) string {
	var magStr string
	switch {
	case magnitude >= 1000:
		magStr = fmt.Sprintf("%8.2e", magnitude)
	case magnitude < 0.001 && magnitude != 0:
		magStr = fmt.Sprintf("%8.2e", magnitude)
	default:
		magStr = fmt.Sprintf("%8.3g", magnitude)
	}
	return fmt.Sprintf("%s<%6.1fdeg", magStr, phase)
}
