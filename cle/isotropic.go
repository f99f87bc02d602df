package cle

import "math"

// EdgeIsotropic evaluates the isotropic CLE displacement field of an edge
// dislocation at in-plane coordinates (x[i], y[i]) relative to the core,
// for Burgers magnitude b and Poisson ratio nu:
//
//	ux =  b/(2π) · [ atan(x/y) + xy / (2(1−ν)·r²) ]
//	uy = −b/(2π) · [ (1−2ν)/(4(1−ν)) · ln r²  +  (y²−x²) / (4(1−ν)·r²) ]
//
// with r² = x² + y². The displacement discontinuity is placed consistently
// below the slip plane by shifting x ← x + b/2 wherever y < 0; the shift is
// applied to a fresh copy, never to the caller's slice.
//
// Errors:
//   - ErrLengthMismatch — len(x) != len(y).
//   - ErrEmptyInput     — no evaluation points.
//   - ErrSingularPoint  — some (shifted) point has r² = 0.
//
// Complexity: O(n) time, O(n) memory for the results and the shifted copy.
func EdgeIsotropic(x, y []float64, b, nu float64) (ux, uy []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}
	n := len(x)
	if n == 0 {
		return nil, nil, ErrEmptyInput
	}

	// Branch-cut transform: pure copy with the half-Burgers shift below the
	// slip plane.
	xs := make([]float64, n)
	copy(xs, x)
	for i := 0; i < n; i++ {
		if y[i] < 0 {
			xs[i] += b / 2
		}
	}

	ux = make([]float64, n)
	uy = make([]float64, n)
	pre := b / (2 * math.Pi)
	denom := 4 * (1 - nu)
	for i := 0; i < n; i++ {
		xi, yi := xs[i], y[i]
		r2 := xi*xi + yi*yi
		if r2 == 0 {
			return nil, nil, ErrSingularPoint
		}
		// atan(x/y): for yi = 0 the quotient is ±Inf and atan yields ±π/2,
		// which is the correct limit from above the slip plane.
		ux[i] = pre * (math.Atan(xi/yi) + xi*yi/(denom/2*r2))
		uy[i] = -pre * ((1-2*nu)/denom*math.Log(r2) + (yi*yi-xi*xi)/(denom*r2))
	}

	return ux, uy, nil
}
