// Package elastic defines the stiffness representations and sentinel errors
// for the elastic subpackage of github.com/latmech/dislo.
package elastic

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for elastic operations.
var (
	// ErrBadShape indicates a matrix argument with wrong dimensions
	// (Voigt matrices are 6×6, rotations are 3×3).
	ErrBadShape = errors.New("elastic: invalid matrix shape")
	// ErrAsymmetric indicates a stiffness matrix violating symmetry within
	// the configured tolerance.
	ErrAsymmetric = errors.New("elastic: stiffness matrix is not symmetric within tolerance")
	// ErrUnstable indicates a stiffness matrix failing the elastic stability
	// inequalities (not positive definite).
	ErrUnstable = errors.New("elastic: stiffness matrix is not positive definite")
	// ErrBadRotation indicates a rotation matrix that is not proper
	// orthonormal within rotTol.
	ErrBadRotation = errors.New("elastic: rotation must be proper orthonormal")
)

// Default tolerances for symmetry and rotation validation.
const (
	// SymTol is the default absolute tolerance for symmetry checks.
	SymTol = 1e-9
	// rotTol bounds |RᵀR − I| entries for rotation validation.
	rotTol = 1e-9
)

// Tensor is the full 4-index elastic stiffness C_ijkl. The zero value is a
// valid (all-zero) tensor; Tensor is a plain value type and may be copied.
type Tensor [3][3][3][3]float64

// Voigt is the contracted 6×6 stiffness matrix in Voigt notation, backed by
// a symmetric gonum matrix it exclusively owns.
type Voigt struct {
	m *mat.SymDense
}

// voigtPairs maps each Voigt index 0..5 to its tensor index pair:
// 1→11, 2→22, 3→33, 4→23, 5→13, 6→12 (zero-based here).
var voigtPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}

// voigtIndex contracts a tensor index pair (i, j) to its Voigt index.
func voigtIndex(i, j int) int {
	if i == j {
		return i
	}
	// Off-diagonal: 23/32→3, 13/31→4, 12/21→5.
	return 6 - i - j
}

// At returns the Voigt entry (i, j); indices follow gonum conventions
// (panic on out-of-range, matching mat.SymDense).
func (v *Voigt) At(i, j int) float64 { return v.m.At(i, j) }

// Sym returns a deep copy of the underlying symmetric 6×6 matrix.
func (v *Voigt) Sym() *mat.SymDense {
	out := mat.NewSymDense(6, nil)
	out.CopySym(v.m)
	return out
}

// Clone returns a deep copy of the Voigt matrix.
func (v *Voigt) Clone() *Voigt { return &Voigt{m: v.Sym()} }
