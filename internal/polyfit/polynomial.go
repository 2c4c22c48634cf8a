package polyfit

import (
	"errors"
)

// Polynomial is P(x) = c0 + c1·x + … + cd·x^d. Coefficients are stored in
// ascending order of power; HighestFirst converts for display.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial builds a polynomial from ascending coefficients. The slice
// is copied.
func NewPolynomial(ascending []float64) (Polynomial, error) {
	if len(ascending) == 0 {
		return Polynomial{}, errors.New("polynomial needs at least one coefficient")
	}
	c := make([]float64, len(ascending))
	copy(c, ascending)
	return Polynomial{coeffs: c}, nil
}

// Degree returns the polynomial degree, len(coefficients)-1.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the coefficients, lowest power first.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// HighestFirst returns a copy of the coefficients, highest power first.
func (p Polynomial) HighestFirst() []float64 {
	n := len(p.coeffs)
	out := make([]float64, n)
	for i, c := range p.coeffs {
		out[n-1-i] = c
	}
	return out
}

// Eval evaluates the polynomial at x using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return y
}

// EvalAll evaluates the polynomial at every x.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}
	return out
}
