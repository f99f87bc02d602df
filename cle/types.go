// Package cle defines sentinel errors and shared constants for the CLE
// displacement-field solvers of github.com/latmech/dislo.
package cle

import "errors"

// Sentinel errors for CLE solvers.
var (
	// ErrLengthMismatch indicates x and y coordinate slices of unequal length.
	ErrLengthMismatch = errors.New("cle: coordinate slices must have equal length")
	// ErrEmptyInput indicates empty coordinate slices.
	ErrEmptyInput = errors.New("cle: coordinate slices must be non-empty")
	// ErrSingularPoint indicates an evaluation point on the dislocation core
	// (vanishing r² or logarithm argument).
	ErrSingularPoint = errors.New("cle: evaluation point coincides with the dislocation core")
	// ErrNonReal indicates the anisotropic solution's imaginary component
	// exceeds the tolerance, signalling defective elastic moduli or inputs.
	ErrNonReal = errors.New("cle: displacement solution is not real within tolerance")
	// ErrDegenerate indicates elastic moduli in the isotropic degeneracy of
	// the anisotropic form (sin 2φ ≈ 0) or with non-positive diagonal
	// stiffness, where the closed form breaks down.
	ErrDegenerate = errors.New("cle: elastic moduli degenerate for the anisotropic edge form")
	// ErrNotImplemented marks the general straight-dislocation solver,
	// which is intentionally not implemented.
	ErrNotImplemented = errors.New("cle: general straight dislocation solver not implemented")
)

// DefaultTol is the default reality/stability tolerance for the anisotropic
// solver.
const DefaultTol = 1e-4

// logFloor bounds the magnitude below which a logarithm argument is treated
// as a core hit rather than fed to the log.
const logFloor = 1e-300

// degenTol bounds |sin 2φ| below which the anisotropic form is rejected as
// degenerate.
const degenTol = 1e-8
