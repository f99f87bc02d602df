package dislocation

import (
	"errors"

	"github.com/latmech/dislo/cle"
	"github.com/latmech/dislo/crystal"
	"github.com/latmech/dislo/elastic"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for cluster assembly.
var (
	// ErrUnknownSolver indicates an unrecognized CLE solver mode.
	ErrUnknownSolver = errors.New("dislocation: unknown CLE solver mode")
	// ErrBadBurgers indicates a Burgers vector with nonzero out-of-plane
	// components, i.e. a frame-construction bug.
	ErrBadBurgers = errors.New("dislocation: Burgers vector has out-of-plane components")
	// ErrMissingModuli indicates the anisotropic mode was requested without
	// a stiffness matrix.
	ErrMissingModuli = errors.New("dislocation: anisotropic mode requires elastic moduli")
	// ErrBadRadius indicates a non-positive cluster radius, or a radius so
	// small that truncation retains no atoms.
	ErrBadRadius = errors.New("dislocation: cluster radius must retain at least one atom")
)

// SolverMode selects the CLE displacement-field solver.
type SolverMode string

const (
	// Isotropic selects the closed-form isotropic solver (Poisson ratio ν).
	Isotropic SolverMode = "isotropic"
	// Anisotropic selects the fully anisotropic solver (6×6 Voigt stiffness).
	Anisotropic SolverMode = "anisotropic"
)

// Options configures AssembleEdgeCluster. Start from DefaultOptions and
// override fields; a zero Options carries no solver mode and is rejected.
type Options struct {
	// Truncate keeps only atoms within the target disk of radius R·a/√2
	// around the core.
	Truncate bool
	// CLE selects the displacement-field solver.
	CLE SolverMode
	// Nu is the Poisson ratio; isotropic mode only.
	Nu float64
	// Moduli is the 6×6 Voigt stiffness in the dislocation frame;
	// anisotropic mode only.
	Moduli *elastic.Voigt
	// Tol is the anisotropic reality tolerance; non-positive values fall
	// back to cle.DefaultTol.
	Tol float64
	// Strict additionally requires the moduli to pass the elastic stability
	// check before solving. Off by default.
	Strict bool
}

// DefaultOptions returns the standard assembly options: truncation on,
// isotropic solver with ν = 0.25, tolerance cle.DefaultTol, strict mode off.
func DefaultOptions() Options {
	return Options{
		Truncate: true,
		CLE:      Isotropic,
		Nu:       0.25,
		Tol:      cle.DefaultTol,
		Strict:   false,
	}
}

// UnitCell is the dislocation-frame unit cell: an orthogonal 3×3 cell
// matrix, the basis atom positions within it, the Burgers vector and the
// core offset. All matrices are exclusively owned by the value; FCCEdgeFrame
// hands out fresh copies on every call.
//
// Frame invariant: Burgers[1] and Burgers[2] are exactly zero — the Burgers
// vector lies along axis 1.
type UnitCell struct {
	Cell       *mat.Dense // 3×3, rows are cell vectors
	Basis      *mat.Dense // N×3 Cartesian basis positions
	Burgers    [3]float64
	CoreOffset [3]float64
}

// EdgeCluster is the assembled result: the final atomic configuration, the
// in-plane core position (axes 1 and 2) and the cubic lattice constant of
// the species.
type EdgeCluster struct {
	Config          *crystal.Config
	Core            [2]float64
	LatticeConstant float64
}
