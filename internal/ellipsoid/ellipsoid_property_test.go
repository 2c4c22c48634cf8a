package ellipsoid

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRadiusBounds_PropertyBased verifies that for any latitude in the
// quarter meridian the radius lies between the polar and equatorial radii.
func TestRadiusBounds_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("Rp <= r(phi) <= Re", prop.ForAll(
		func(phi float64) bool {
			r := WGS84.Radius(phi)
			tol := 1e-9 * WGS84.Equatorial
			return r >= WGS84.Polar-tol && r <= WGS84.Equatorial+tol
		},
		gen.Float64Range(0, math.Pi/2),
	))

	properties.TestingRun(t)
}

// TestRadiusMonotonic_PropertyBased verifies the radius never grows when
// moving from the equator towards the pole.
func TestRadiusMonotonic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("phi1 <= phi2 implies r(phi1) >= r(phi2)", prop.ForAll(
		func(a, b float64) bool {
			lo, hi := math.Min(a, b), math.Max(a, b)
			return WGS84.Radius(lo) >= WGS84.Radius(hi)-1e-6
		},
		gen.Float64Range(0, math.Pi/2),
		gen.Float64Range(0, math.Pi/2),
	))

	properties.TestingRun(t)
}

// TestRadiusSymmetry_PropertyBased verifies r(-phi) = r(phi), which is what
// allows sampling only the northern quarter meridian.
func TestRadiusSymmetry_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("r(-phi) == r(phi)", prop.ForAll(
		func(phi float64) bool {
			return math.Abs(WGS84.Radius(-phi)-WGS84.Radius(phi)) < 1e-6
		},
		gen.Float64Range(0, math.Pi/2),
	))

	properties.TestingRun(t)
}
