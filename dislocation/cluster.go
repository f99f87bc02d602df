package dislocation

import (
	"fmt"
	"math"

	"github.com/latmech/dislo/cle"
	"github.com/latmech/dislo/crystal"
	"github.com/latmech/dislo/elastic"
	"gonum.org/v1/gonum/mat"
)

// truncEps absorbs floating rounding at the disk boundary during truncation.
const truncEps = 1e-9

// AssembleEdgeCluster builds the predictor configuration for an FCC edge
// dislocation in the given species: a finite cluster of radius r in units of
// the Burgers magnitude a/√2, displaced by the CLE field selected in opts.
//
// The pipeline is Validate → BuildFrame → Replicate → LocateCore → Solve →
// Displace → (Truncate) → Emit:
//
//  1. Option defects fail before any geometry is built: an unknown solver
//     mode (ErrUnknownSolver), a non-positive radius (ErrBadRadius), a
//     missing stiffness in anisotropic mode (ErrMissingModuli). With
//     opts.Strict set, the stiffness must also pass elastic.CheckStable.
//  2. The oriented unit cell comes from FCCEdgeFrame; replica counts
//     ⌈2r⌉+2 along the Burgers axis and ⌈2r/√2⌉+2 along the slip-plane
//     normal cover the target disk with margin, with a single replica
//     along the line.
//  3. The Burgers vector is reduced to the scalar b after asserting its
//     out-of-plane components vanish (ErrBadBurgers otherwise).
//  4. The core anchors at the atom whose in-plane projection is nearest the
//     centroid of all projections, ties broken by first occurrence in
//     replication order, plus the unit cell's core offset.
//  5. The solver maps core-relative coordinates to (ux, uy); solver errors
//     propagate unchanged (e.g. cle.ErrNonReal).
//  6. With opts.Truncate, only atoms whose displaced in-plane distance from
//     the core is at most r·a/√2 survive; the cell matrix is retained, as
//     cell shape belongs to the periodic superstructure rather than to the
//     surviving atom set. A radius retaining no atoms fails with
//     ErrBadRadius.
//
// The returned configuration is periodic only along the dislocation line
// (flags false, false, true). Every failure is unrecoverable and returns a
// nil cluster; identical inputs produce bit-identical results.
//
// Complexity: O(N) time and memory in the replicated atom count N.
func AssembleEdgeCluster(species string, r float64, opts Options) (*EdgeCluster, error) {
	switch opts.CLE {
	case Isotropic, Anisotropic:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, opts.CLE)
	}
	if !(r > 0) {
		return nil, ErrBadRadius
	}
	if opts.CLE == Anisotropic {
		if opts.Moduli == nil {
			return nil, ErrMissingModuli
		}
		if opts.Strict {
			if err := elastic.CheckStable(opts.Moduli); err != nil {
				return nil, err
			}
		}
	}

	frame, a, err := FCCEdgeFrame(species)
	if err != nil {
		return nil, err
	}
	if frame.Burgers[1] != 0 || frame.Burgers[2] != 0 {
		return nil, ErrBadBurgers
	}
	b := frame.Burgers[0]

	base, err := crystal.NewConfig(species, frame.Cell, frame.Basis, [3]bool{true, true, true})
	if err != nil {
		return nil, err
	}
	n1 := int(math.Ceil(2*r)) + 2
	n2 := int(math.Ceil(2*r/math.Sqrt2)) + 2
	cfg, err := base.Replicate(n1, n2, 1)
	if err != nil {
		return nil, err
	}

	pos := cfg.Positions()
	n := cfg.NAtoms()

	// Core anchor: atom whose in-plane projection is nearest the centroid.
	var cx, cy float64
	for i := 0; i < n; i++ {
		cx += pos.At(i, 0)
		cy += pos.At(i, 1)
	}
	cx /= float64(n)
	cy /= float64(n)
	anchor, best := 0, math.Inf(1)
	for i := 0; i < n; i++ {
		dx, dy := pos.At(i, 0)-cx, pos.At(i, 1)-cy
		if d2 := dx*dx + dy*dy; d2 < best {
			anchor, best = i, d2
		}
	}
	core := [2]float64{
		pos.At(anchor, 0) + frame.CoreOffset[0],
		pos.At(anchor, 1) + frame.CoreOffset[1],
	}

	relX := make([]float64, n)
	relY := make([]float64, n)
	for i := 0; i < n; i++ {
		relX[i] = pos.At(i, 0) - core[0]
		relY[i] = pos.At(i, 1) - core[1]
	}

	var ux, uy []float64
	switch opts.CLE {
	case Isotropic:
		ux, uy, err = cle.EdgeIsotropic(relX, relY, b, opts.Nu)
	case Anisotropic:
		ux, uy, err = cle.EdgeAnisotropic(relX, relY, b, opts.Moduli, opts.Tol)
	}
	if err != nil {
		return nil, err
	}

	displaced := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		displaced.Set(i, 0, core[0]+relX[i]+ux[i])
		displaced.Set(i, 1, core[1]+relY[i]+uy[i])
		displaced.Set(i, 2, pos.At(i, 2))
	}

	if opts.Truncate {
		rmax := r * a / math.Sqrt2
		bound := rmax*rmax + truncEps
		var kept []float64
		for i := 0; i < n; i++ {
			dx := displaced.At(i, 0) - core[0]
			dy := displaced.At(i, 1) - core[1]
			if dx*dx+dy*dy <= bound {
				kept = append(kept, displaced.At(i, 0), displaced.At(i, 1), displaced.At(i, 2))
			}
		}
		if len(kept) == 0 {
			return nil, ErrBadRadius
		}
		displaced = mat.NewDense(len(kept)/3, 3, kept)
	}

	out, err := cfg.WithPositions(displaced)
	if err != nil {
		return nil, err
	}
	out = out.WithPBC([3]bool{false, false, true})

	return &EdgeCluster{Config: out, Core: core, LatticeConstant: a}, nil
}
