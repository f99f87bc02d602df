package dislocation

import (
	"math"

	"github.com/latmech/dislo/crystal"
	"gonum.org/v1/gonum/mat"
)

// FCCEdgeFrame builds the oriented unit cell for an FCC edge dislocation
// with Burgers vector b = a/√2·[110]. The frame axes are
//
//	axis 1 — Burgers direction [110], cell edge u = a/√2
//	axis 2 — slip-plane normal [001], cell edge a
//	axis 3 — dislocation line  [1-10], cell edge u = a/√2
//
// The FCC lattice viewed along these axes reduces to a two-atom basis: the
// corner atom and the body-centered atom at (u/2, a/2, u/2), which together
// reproduce the two alternating (001) planes of the stacking.
//
// The core offset u·(1/2, 1/3, 0) places the dislocation core strictly
// between lattice planes along both in-plane axes, so the field singularity
// never coincides with an atom.
//
// The species is validated against the FCC lattice first; mismatches fail
// with crystal.ErrStructureMismatch and unknown labels with
// crystal.ErrUnknownSpecies. Also returns the cubic lattice constant a.
func FCCEdgeFrame(species string) (*UnitCell, float64, error) {
	if err := crystal.CheckFCC(species); err != nil {
		return nil, 0, err
	}
	a, err := crystal.LatticeConstant(species)
	if err != nil {
		return nil, 0, err
	}
	u := a / math.Sqrt2

	cell := mat.NewDense(3, 3, []float64{
		u, 0, 0,
		0, a, 0,
		0, 0, u,
	})
	basis := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		u / 2, a / 2, u / 2,
	})

	uc := &UnitCell{
		Cell:       cell,
		Basis:      basis,
		Burgers:    [3]float64{u, 0, 0},
		CoreOffset: [3]float64{u / 2, u / 3, 0},
	}

	return uc, a, nil
}
