// Package quality measures how closely a fitted polynomial reproduces the
// exact radii of a sample set.
package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/agbru/radiusfit/internal/polyfit"
	"github.com/agbru/radiusfit/internal/sampling"
)

// Report summarises the residuals of a fit, in meters.
type Report struct {
	// MaxAbs is max_i |P(s2_i) − r_i|.
	MaxAbs float64
	// RMS is sqrt(mean_i (P(s2_i) − r_i)²).
	RMS float64
	// WorstPhi is the latitude, in radians, where MaxAbs occurs.
	WorstPhi float64
	// Samples is the number of residuals the report was computed from.
	Samples int
}

// Residuals returns e_i = P(s2_i) − r_i for every sample.
func Residuals(set *sampling.Set, p polyfit.Polynomial) []float64 {
	e := p.EvalAll(set.S2())
	floats.Sub(e, set.Radii())
	return e
}

// Evaluate computes the maximum absolute and root-mean-square residual of p
// over set.
func Evaluate(set *sampling.Set, p polyfit.Polynomial) Report {
	e := Residuals(set, p)
	n := len(e)

	abs := make([]float64, n)
	for i, v := range e {
		abs[i] = math.Abs(v)
	}
	worst := floats.MaxIdx(abs)

	return Report{
		MaxAbs:   abs[worst],
		RMS:      floats.Norm(e, 2) / math.Sqrt(float64(n)),
		WorstPhi: set.At(worst).Phi,
		Samples:  n,
	}
}
