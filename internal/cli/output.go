// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Present* methods write a section of the report to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatCoefficients], [FormatMeters], [FormatQuietResult].

package cli

import (
	"fmt"
	"strings"

	"github.com/agbru/radiusfit/internal/polyfit"
	"github.com/agbru/radiusfit/internal/quality"
)

// CoefficientsHeading introduces the coefficient listing and states its
// ordering.
const CoefficientsHeading = "Polynomial coefficients (highest degree first):"

// FormatMeters formats a length in meters to 4 decimal places.
func FormatMeters(v float64) string {
	return fmt.Sprintf("%.4f m", v)
}

// FormatCoefficient formats one coefficient with 10 significant digits.
func FormatCoefficient(c float64) string {
	return fmt.Sprintf("%.10g", c)
}

// FormatCoefficients returns one line per coefficient of p, highest degree
// first, each naming the power of s2 it multiplies.
//
// Example for a degree-2 polynomial:
//
//	c2 = -21.42 * s2^2
//	c1 = -21208.5 * s2
//	c0 = 6378137
func FormatCoefficients(p polyfit.Polynomial) []string {
	coeffs := p.HighestFirst()
	lines := make([]string, len(coeffs))
	for i, c := range coeffs {
		k := p.Degree() - i
		switch k {
		case 0:
			lines[i] = fmt.Sprintf("c0 = %s", FormatCoefficient(c))
		case 1:
			lines[i] = fmt.Sprintf("c1 = %s * s2", FormatCoefficient(c))
		default:
			lines[i] = fmt.Sprintf("c%d = %s * s2^%d", k, FormatCoefficient(c), k)
		}
	}
	return lines
}

// QuietOrderLine opens the quiet output and states the coefficient order.
const QuietOrderLine = "# highest degree first"

// FormatQuietResult formats a fit for quiet mode in three lines:
// QuietOrderLine, the coefficients separated by spaces in that order, then
// the maximum and RMS errors. Suitable for scripting.
//
// The two error figures are in meters, with 4 decimal places.
func FormatQuietResult(p polyfit.Polynomial, r quality.Report) string {
	coeffs := p.HighestFirst()
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = FormatCoefficient(c)
	}
	return fmt.Sprintf("%s\n%s\n%.4f %.4f", QuietOrderLine, strings.Join(parts, " "), r.MaxAbs, r.RMS)
}
