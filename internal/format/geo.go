package format

import (
	"fmt"
	"math"
)

// FormatLatitude renders a latitude given in radians as decimal degrees.
func FormatLatitude(phi float64) string {
	return fmt.Sprintf("%.4f deg", phi*180/math.Pi)
}

// FormatInverseFlattening renders a flattening f as "1/x", or "0" for a
// sphere.
func FormatInverseFlattening(f float64) string {
	if f == 0 {
		return "0"
	}
	return fmt.Sprintf("1/%.9f", 1/f)
}
