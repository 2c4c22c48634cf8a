package polyfit

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	apperrors "github.com/agbru/radiusfit/internal/errors"
	"github.com/agbru/radiusfit/internal/sampling"
)

const (
	// DefaultDegree is the degree used when none is configured.
	DefaultDegree = 4
	// ConditionThreshold is the design matrix condition number above which a
	// fit carries a NumericalInstabilityWarning.
	ConditionThreshold = 1e10

	// rcondEpsilon is the float64 machine epsilon, 2^-52.
	rcondEpsilon = 0x1p-52
)

// Result is the outcome of a least-squares fit.
type Result struct {
	// Poly is the fitted polynomial in s2.
	Poly Polynomial
	// Condition is the 2-norm condition number of the design matrix. It is
	// +Inf when the smallest singular value is zero.
	Condition float64
	// Rank is the number of singular directions used by the solve: degree+1
	// unless the matrix was too ill-conditioned for QR.
	Rank int
	// Warning is a NumericalInstabilityWarning when Condition exceeds
	// ConditionThreshold or the SVD fallback was used, nil otherwise. It never
	// invalidates Poly.
	Warning error
}

// CheckDegree validates degree against the number of samples available.
func CheckDegree(samples, degree int) error {
	if degree < 0 {
		return apperrors.NewInvalidParameterError("degree", degree, "must be non-negative")
	}
	if degree >= samples {
		return apperrors.UnderdeterminedFitError{Samples: samples, Degree: degree}
	}
	return nil
}

// Fit finds the coefficients c minimising Σ (P(s2_i; c) − r_i)² over the
// sample set, where P(s2; c) = Σ c_k·s2^k for k = 0..degree.
//
// The problem is solved by Householder QR factorisation of the N×(degree+1)
// Vandermonde matrix; the normal equations are never formed. When the matrix
// is numerically singular for QR, the minimum-norm solution is taken from a
// singular value decomposition truncated at the effective rank, and the
// result carries a NumericalInstabilityWarning.
func Fit(set *sampling.Set, degree int) (Result, error) {
	if err := CheckDegree(set.Len(), degree); err != nil {
		return Result{}, err
	}

	a := Vandermonde(set.S2(), degree)
	b := mat.NewVecDense(set.Len(), set.Radii())
	c := mat.NewVecDense(degree+1, nil)

	var qr mat.QR
	qr.Factorize(a)

	res := Result{Rank: degree + 1}
	truncated := false
	if err := qr.SolveVecTo(c, false, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Result{}, apperrors.CalculationError{Cause: apperrors.WrapError(err, "least-squares solve")}
		}
		truncated = true
		res.Rank, res.Condition, err = solveTruncated(a, b, c)
		if err != nil {
			return Result{}, apperrors.CalculationError{Cause: apperrors.WrapError(err,
				"degree %d design matrix is numerically rank deficient", degree)}
		}
	} else {
		res.Condition = mat.Cond(a, 2)
	}

	poly, err := NewPolynomial(c.RawVector().Data)
	if err != nil {
		return Result{}, err
	}
	res.Poly = poly

	if truncated || res.Condition > ConditionThreshold {
		res.Warning = apperrors.NumericalInstabilityWarning{Condition: res.Condition, Threshold: ConditionThreshold}
	}
	return res, nil
}

// solveTruncated writes the minimum-norm least-squares solution of a·x = b
// into x, discarding singular values at or below max(rows, cols)·ε times the
// largest one. It returns the effective rank and the condition number.
func solveTruncated(a *mat.Dense, b, x *mat.VecDense) (rank int, cond float64, err error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return 0, 0, errors.New("singular value decomposition did not converge")
	}
	rows, cols := a.Dims()
	rank = svd.Rank(float64(max(rows, cols)) * rcondEpsilon)
	if rank < 1 {
		return 0, 0, errors.New("design matrix has no significant singular value")
	}
	svd.SolveVecTo(x, b, rank)
	return rank, svd.Cond(), nil
}

// Vandermonde returns the len(x)×(degree+1) matrix with A[i][k] = x_i^k.
func Vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i := range x {
		for k, p := 0, 1.0; k <= degree; k, p = k+1, p*x[i] {
			v.Set(i, k, p)
		}
	}
	return v
}
