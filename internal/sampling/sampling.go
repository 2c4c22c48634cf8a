// Package sampling builds the deterministic latitude grid the fit is solved
// against: evenly spaced latitudes over the quarter meridian [0, pi/2], the
// transformed variable s2 = sin²(phi) and the exact radius at each latitude.
package sampling

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/agbru/radiusfit/internal/ellipsoid"
	apperrors "github.com/agbru/radiusfit/internal/errors"
)

const (
	// DefaultCount is the number of samples used when none is configured.
	DefaultCount = 200
	// MinCount is the smallest grid that still contains both endpoints.
	MinCount = 2
)

// Sample is one grid point.
type Sample struct {
	// Phi is the latitude in radians.
	Phi float64
	// S2 is sin²(Phi), the fit's independent variable.
	S2 float64
	// Radius is the exact ellipsoid radius at Phi, in meters.
	Radius float64
}

// Set is an ordered, immutable sequence of samples. Phi and S2 are strictly
// increasing, Phi runs from 0 to pi/2 and S2 from 0 to 1.
type Set struct {
	phi    []float64
	s2     []float64
	radius []float64
}

// Generate places n latitudes uniformly over [0, pi/2], both ends included,
// and evaluates the transformed variable and the exact radius at each one.
func Generate(n int, p ellipsoid.Parameters) (*Set, error) {
	if n < MinCount {
		return nil, apperrors.NewInvalidParameterError("sample_count", n, "must be at least %d", MinCount)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	phi := floats.Span(make([]float64, n), 0, math.Pi/2)
	phi[n-1] = math.Pi / 2
	samples := make([]Sample, n)
	for i, v := range phi {
		s := math.Sin(v)
		samples[i] = Sample{Phi: v, S2: s * s, Radius: p.Radius(v)}
	}
	// Pin both ends so the domain of the fit is exactly [0, 1].
	samples[0].S2, samples[n-1].S2 = 0, 1

	// A grid too fine for float64 fails here instead of producing repeated
	// abscissae.
	return NewSet(samples)
}

// NewSet builds a set from explicit samples, e.g. tabulated radii. The
// samples must hold at least MinCount points with Phi and S2 strictly
// increasing and S2 inside [0, 1].
func NewSet(samples []Sample) (*Set, error) {
	n := len(samples)
	if n < MinCount {
		return nil, apperrors.NewInvalidParameterError("sample_count", n, "must be at least %d", MinCount)
	}
	set := &Set{
		phi:    make([]float64, n),
		s2:     make([]float64, n),
		radius: make([]float64, n),
	}
	for i, s := range samples {
		if s.S2 < 0 || s.S2 > 1 {
			return nil, apperrors.NewInvalidParameterError("s2", s.S2, "sample %d outside [0, 1]", i)
		}
		if i > 0 && (s.Phi <= samples[i-1].Phi || s.S2 <= samples[i-1].S2) {
			return nil, apperrors.NewInvalidParameterError("phi", s.Phi, "sample %d is not strictly increasing", i)
		}
		set.phi[i], set.s2[i], set.radius[i] = s.Phi, s.S2, s.Radius
	}
	return set, nil
}

// Len returns the number of samples.
func (s *Set) Len() int { return len(s.phi) }

// At returns the i-th sample.
func (s *Set) At(i int) Sample {
	return Sample{Phi: s.phi[i], S2: s.s2[i], Radius: s.radius[i]}
}

// Phi returns a copy of the latitudes.
func (s *Set) Phi() []float64 { return clone(s.phi) }

// S2 returns a copy of the transformed variable.
func (s *Set) S2() []float64 { return clone(s.s2) }

// Radii returns a copy of the exact radii.
func (s *Set) Radii() []float64 { return clone(s.radius) }

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
