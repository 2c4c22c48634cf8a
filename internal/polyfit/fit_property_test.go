package polyfit

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/stat"

	"github.com/agbru/radiusfit/internal/ellipsoid"
	"github.com/agbru/radiusfit/internal/sampling"
)

// earthLike builds an oblate ellipsoid with an Earth-sized equator and a
// flattening of at most 1%.
func earthLike(re, f float64) ellipsoid.Parameters {
	return ellipsoid.Parameters{Equatorial: re, Polar: re * (1 - f)}
}

// TestDegreeZeroIsMean_PropertyBased verifies that the least-squares
// constant equals the arithmetic mean of the exact radii for any grid and
// any oblate ellipsoid.
func TestDegreeZeroIsMean_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("degree-0 coefficient == mean radius", prop.ForAll(
		func(n int, re, f float64) bool {
			set, err := sampling.Generate(n, earthLike(re, f))
			if err != nil {
				return false
			}
			res, err := Fit(set, 0)
			if err != nil {
				return false
			}
			return math.Abs(res.Poly.Coefficients()[0]-stat.Mean(set.Radii(), nil)) < 1e-6
		},
		gen.IntRange(2, 1000),
		gen.Float64Range(6.0e6, 7.0e6),
		gen.Float64Range(0, 0.01),
	))

	properties.TestingRun(t)
}

// TestFitImprovesWithDegree_PropertyBased verifies that raising the degree
// from 2 to 4 never increases the worst residual on Earth-like ellipsoids.
func TestFitImprovesWithDegree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("max|e| at degree 4 <= max|e| at degree 2", prop.ForAll(
		func(n int, re, f float64) bool {
			set, err := sampling.Generate(n, earthLike(re, f))
			if err != nil {
				return false
			}
			two, err := Fit(set, 2)
			if err != nil {
				return false
			}
			four, err := Fit(set, 4)
			if err != nil {
				return false
			}
			return maxAbsResidual(set, four.Poly) <= maxAbsResidual(set, two.Poly)+1e-9
		},
		gen.IntRange(20, 1000),
		gen.Float64Range(6.0e6, 7.0e6),
		gen.Float64Range(0.001, 0.01),
	))

	properties.TestingRun(t)
}
