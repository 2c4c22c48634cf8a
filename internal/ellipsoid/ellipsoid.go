// Package ellipsoid models an oblate ellipsoid by its equatorial and polar
// radii and evaluates its exact radius as a function of geographic latitude.
package ellipsoid

import (
	"math"

	apperrors "github.com/agbru/radiusfit/internal/errors"
)

// Parameters describes an oblate ellipsoid. Both radii are in meters.
// Values are immutable; methods take a copy.
type Parameters struct {
	// Equatorial is the semi-major axis Re.
	Equatorial float64
	// Polar is the semi-minor axis Rp.
	Polar float64
}

// WGS84 is the default ellipsoid.
var WGS84 = Parameters{Equatorial: 6378137.0, Polar: 6356752.314245}

// Validate checks that both radii are finite and positive and that the
// ellipsoid is oblate (Re >= Rp).
func (p Parameters) Validate() error {
	if math.IsNaN(p.Equatorial) || math.IsInf(p.Equatorial, 0) || p.Equatorial <= 0 {
		return apperrors.NewInvalidParameterError("equatorial_radius", p.Equatorial, "must be a finite positive number of meters")
	}
	if math.IsNaN(p.Polar) || math.IsInf(p.Polar, 0) || p.Polar <= 0 {
		return apperrors.NewInvalidParameterError("polar_radius", p.Polar, "must be a finite positive number of meters")
	}
	if p.Equatorial < p.Polar {
		return apperrors.NewInvalidParameterError("polar_radius", p.Polar,
			"must not exceed equatorial_radius %g for an oblate ellipsoid", p.Equatorial)
	}
	return nil
}

// Radius returns the exact geocentric radius at latitude phi (radians):
//
//	r(phi) = sqrt(((Re²·cos phi)² + (Rp²·sin phi)²) / ((Re·cos phi)² + (Rp·sin phi)²))
//
// The denominator is strictly positive for any phi when both radii are
// positive, so r(0) = Re and r(pi/2) = Rp need no special casing.
func (p Parameters) Radius(phi float64) float64 {
	s, c := math.Sincos(phi)
	re2 := p.Equatorial * p.Equatorial
	rp2 := p.Polar * p.Polar

	num := (re2*c)*(re2*c) + (rp2*s)*(rp2*s)
	den := (p.Equatorial*c)*(p.Equatorial*c) + (p.Polar*s)*(p.Polar*s)
	return math.Sqrt(num / den)
}

// Flattening returns (Re - Rp) / Re.
func (p Parameters) Flattening() float64 {
	return (p.Equatorial - p.Polar) / p.Equatorial
}
