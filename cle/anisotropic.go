package cle

import (
	"math"
	"math/cmplx"

	"github.com/latmech/dislo/elastic"
)

// EdgeAnisotropic evaluates the fully anisotropic CLE displacement field of
// an edge dislocation at in-plane coordinates (x[i], y[i]) relative to the
// core, for Burgers magnitude b and the 6×6 Voigt stiffness cv expressed in
// the dislocation frame (x ∥ Burgers vector, y ∥ slip-plane normal,
// z ∥ line).
//
// The solution uses the auxiliary parameters
//
//	c̄11 = √(Cv11·Cv22)
//	λ    = (Cv11/Cv22)^¼
//	φ    = ½·acos( (Cv12² + 2·Cv12·Cv66 − c̄11²) / (2·c̄11·Cv66) )
//	q²   = x² + 2xyλcosφ + y²λ²
//	t²   = x² − 2xyλcosφ + y²λ²
//
// and the displacement components
//
//	ux = −(b/4π)·[ atan2(2xyλsinφ, x²−λ²y²)
//	       + (c̄11²−Cv12²)/(2c̄11·Cv66·sin2φ) · ½·ln(q²/t²) ]
//	uy = (λb/(4π·c̄11·sin2φ))·[ (c̄11−Cv12)·cosφ·½·ln(q²t²)
//	       − (c̄11+Cv12)·sinφ·atan2(y²λ²sin2φ, x²−λ²y²cos2φ) ]
//
// This contraction is valid only under the elastic symmetry of a cubic
// crystal viewed along its rotated edge-dislocation axes (the normal-shear
// coupling terms vanish); the caller may enforce that precondition with the
// strict checks in package elastic — it is not enforced here.
//
// φ is evaluated over complex numbers, so a stiffness outside the validity
// region does not produce NaNs: it produces a solution with a nonzero
// imaginary part, which fails the reality postcondition |Im u| < tol with
// ErrNonReal. The arctangents use a branch-consistent complex two-argument
// form and the logarithm arguments are guarded against vanishing magnitude.
//
// Errors:
//   - ErrLengthMismatch — len(x) != len(y).
//   - ErrEmptyInput     — no evaluation points.
//   - ErrDegenerate     — Cv11/Cv22/Cv66 non-positive or |sin 2φ| below
//     degenTol (the isotropic degeneracy of this form).
//   - ErrSingularPoint  — |q²| or |t²| below logFloor at some point.
//   - ErrNonReal        — |Im ux| or |Im uy| ≥ tol at some point.
//
// Complexity: O(n) time, O(n) memory.
func EdgeAnisotropic(x, y []float64, b float64, cv *elastic.Voigt, tol float64) (ux, uy []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}
	n := len(x)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}
	if tol <= 0 {
		tol = DefaultTol
	}

	cv11, cv22 := cv.At(0, 0), cv.At(1, 1)
	cv12, cv66 := cv.At(0, 1), cv.At(5, 5)
	if cv11 <= 0 || cv22 <= 0 || cv66 <= 0 {
		return nil, nil, ErrDegenerate
	}

	// Auxiliary parameters; φ may be complex when the stiffness leaves the
	// validity region of the contraction.
	c11b := math.Sqrt(cv11 * cv22)
	lam := math.Pow(cv11/cv22, 0.25)
	phi := 0.5 * cmplx.Acos(complex((cv12*cv12+2*cv12*cv66-c11b*c11b)/(2*c11b*cv66), 0))

	sinPhi, cosPhi := cmplx.Sin(phi), cmplx.Cos(phi)
	sin2Phi, cos2Phi := cmplx.Sin(2*phi), cmplx.Cos(2*phi)
	if cmplx.Abs(sin2Phi) < degenTol {
		return nil, nil, ErrDegenerate
	}

	var (
		lamC   = complex(lam, 0)
		c11bC  = complex(c11b, 0)
		cv12C  = complex(cv12, 0)
		preUx  = complex(-b/(4*math.Pi), 0)
		preUy  = lamC * complex(b/(4*math.Pi), 0) / (c11bC * sin2Phi)
		logCUx = (c11bC*c11bC - cv12C*cv12C) / (2 * c11bC * complex(cv66, 0) * sin2Phi)
	)

	ux = make([]float64, n)
	uy = make([]float64, n)
	for i := 0; i < n; i++ {
		xc := complex(x[i], 0)
		yc := complex(y[i], 0)

		q2 := xc*xc + 2*xc*yc*lamC*cosPhi + yc*yc*lamC*lamC
		t2 := xc*xc - 2*xc*yc*lamC*cosPhi + yc*yc*lamC*lamC
		if cmplx.Abs(q2) < logFloor || cmplx.Abs(t2) < logFloor {
			return nil, nil, ErrSingularPoint
		}

		uxc := preUx * (atan2c(2*xc*yc*lamC*sinPhi, xc*xc-lamC*lamC*yc*yc) +
			logCUx*0.5*cmplx.Log(q2/t2))
		uyc := preUy * ((c11bC-cv12C)*cosPhi*0.5*cmplx.Log(q2*t2) -
			(c11bC+cv12C)*sinPhi*atan2c(yc*yc*lamC*lamC*sin2Phi, xc*xc-lamC*lamC*yc*yc*cos2Phi))

		if math.Abs(imag(uxc)) >= tol || math.Abs(imag(uyc)) >= tol {
			return nil, nil, ErrNonReal
		}
		ux[i] = real(uxc)
		uy[i] = real(uyc)
	}

	return ux, uy, nil
}

// EdgeAnisotropicTensor is the named 4-index entry point: it contracts the
// full stiffness tensor to Voigt form and solves via EdgeAnisotropic.
func EdgeAnisotropicTensor(x, y []float64, b float64, c *elastic.Tensor, tol float64) (ux, uy []float64, err error) {
	return EdgeAnisotropic(x, y, b, c.Voigt(), tol)
}

// atan2c is the branch-consistent complex continuation of atan2(s, c):
//
//	atan2c(s, c) = −i·log( (c + i·s) / √(c² + s²) )
//
// For real s, c it reproduces math.Atan2 (principal value in (−π, π]),
// which keeps the removable singularities along x = ±λy finite. The origin
// maps to 0 by convention.
func atan2c(s, c complex128) complex128 {
	r := cmplx.Sqrt(c*c + s*s)
	if r == 0 {
		return 0
	}

	return complex(0, -1) * cmplx.Log((c+complex(0, 1)*s)/r)
}

// Straight is the general straight-dislocation solver (arbitrary line
// direction, general Burgers vector). It is intentionally unimplemented and
// always returns ErrNotImplemented; only the edge geometry above is
// supported.
func Straight(x, y []float64, burgers, line [3]float64, cv *elastic.Voigt) (ux, uy []float64, err error) {
	return nil, nil, ErrNotImplemented
}
