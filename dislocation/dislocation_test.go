package dislocation_test

import (
	"math"
	"testing"

	"github.com/latmech/dislo/crystal"
	"github.com/latmech/dislo/dislocation"
	"github.com/latmech/dislo/elastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Cubic copper constants (GPa).
const (
	cuC11 = 170.0
	cuC12 = 122.5
	cuC44 = 75.7
)

// TestFCCEdgeFrame_Invariants pins the frame contract: Burgers vector along
// axis 1 with magnitude a/√2, orthogonal cell with edges (a/√2, a, a/√2),
// two-atom basis, core offset strictly between lattice planes.
func TestFCCEdgeFrame_Invariants(t *testing.T) {
	uc, a, err := dislocation.FCCEdgeFrame("Cu")
	require.NoError(t, err)
	require.Equal(t, 3.615, a)

	u := a / math.Sqrt2
	assert.Equal(t, u, uc.Burgers[0], "Burgers magnitude is a/√2")
	assert.Zero(t, uc.Burgers[1], "no out-of-plane Burgers component")
	assert.Zero(t, uc.Burgers[2], "no out-of-plane Burgers component")

	assert.Equal(t, u, uc.Cell.At(0, 0))
	assert.Equal(t, a, uc.Cell.At(1, 1))
	assert.Equal(t, u, uc.Cell.At(2, 2))
	assert.Zero(t, uc.Cell.At(0, 1), "cell is orthogonal")
	assert.Zero(t, uc.Cell.At(1, 0), "cell is orthogonal")

	rows, cols := uc.Basis.Dims()
	assert.Equal(t, 2, rows, "two basis atoms reproduce the stacking")
	assert.Equal(t, 3, cols)
	assert.Equal(t, u/2, uc.Basis.At(1, 0))
	assert.Equal(t, a/2, uc.Basis.At(1, 1))

	assert.Equal(t, u/2, uc.CoreOffset[0], "core sits between planes along Burgers axis")
	assert.Equal(t, u/3, uc.CoreOffset[1], "core sits between planes along the normal")
	assert.Zero(t, uc.CoreOffset[2])
}

// TestFCCEdgeFrame_Validation requires the structure gate to fire before any
// geometry is built.
func TestFCCEdgeFrame_Validation(t *testing.T) {
	_, _, err := dislocation.FCCEdgeFrame("Fe")
	assert.ErrorIs(t, err, crystal.ErrStructureMismatch, "BCC species must be rejected")

	_, _, err = dislocation.FCCEdgeFrame("Unobtainium")
	assert.ErrorIs(t, err, crystal.ErrUnknownSpecies)
}

// TestAssembleEdgeCluster_MonotoneGrowth checks the untruncated atom count
// grows with the requested radius.
func TestAssembleEdgeCluster_MonotoneGrowth(t *testing.T) {
	opts := dislocation.DefaultOptions()
	opts.Truncate = false

	prev := 0
	for _, r := range []float64{1, 2, 3, 5} {
		c, err := dislocation.AssembleEdgeCluster("Cu", r, opts)
		require.NoError(t, err, "radius %v", r)
		n := c.Config.NAtoms()
		assert.Greater(t, n, prev, "atom count must grow with radius (r=%v)", r)
		prev = n
	}
}

// TestAssembleEdgeCluster_TruncationBound verifies every surviving atom lies
// within the target disk, the truncated set is a subset of the untruncated
// one, and the cell matrix survives truncation unchanged.
func TestAssembleEdgeCluster_TruncationBound(t *testing.T) {
	const r = 3.0

	full, err := dislocation.AssembleEdgeCluster("Cu", r, func() dislocation.Options {
		o := dislocation.DefaultOptions()
		o.Truncate = false
		return o
	}())
	require.NoError(t, err)

	trunc, err := dislocation.AssembleEdgeCluster("Cu", r, dislocation.DefaultOptions())
	require.NoError(t, err)

	rmax := r * trunc.LatticeConstant / math.Sqrt2
	pos := trunc.Config.Positions()
	for i := 0; i < trunc.Config.NAtoms(); i++ {
		dx := pos.At(i, 0) - trunc.Core[0]
		dy := pos.At(i, 1) - trunc.Core[1]
		assert.LessOrEqual(t, math.Hypot(dx, dy), rmax*(1+1e-9), "atom %d outside the disk", i)
	}

	assert.Less(t, trunc.Config.NAtoms(), full.Config.NAtoms(), "truncation must drop corner atoms")
	assert.True(t, mat.Equal(full.Config.Cell(), trunc.Config.Cell()), "cell matrix is retained")

	// Subset: displacement is deterministic, so truncation only filters rows.
	fullSet := make(map[[3]float64]bool, full.Config.NAtoms())
	fp := full.Config.Positions()
	for i := 0; i < full.Config.NAtoms(); i++ {
		fullSet[[3]float64{fp.At(i, 0), fp.At(i, 1), fp.At(i, 2)}] = true
	}
	for i := 0; i < trunc.Config.NAtoms(); i++ {
		key := [3]float64{pos.At(i, 0), pos.At(i, 1), pos.At(i, 2)}
		assert.True(t, fullSet[key], "truncated atom %d missing from untruncated set", i)
	}
}

// TestAssembleEdgeCluster_Deterministic requires bit-identical positions and
// core coordinates across repeated runs.
func TestAssembleEdgeCluster_Deterministic(t *testing.T) {
	c1, err := dislocation.AssembleEdgeCluster("Cu", 3, dislocation.DefaultOptions())
	require.NoError(t, err)
	c2, err := dislocation.AssembleEdgeCluster("Cu", 3, dislocation.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, c1.Core, c2.Core)
	assert.Equal(t, c1.LatticeConstant, c2.LatticeConstant)
	assert.True(t, mat.Equal(c1.Config.Positions(), c2.Config.Positions()),
		"position lists must be bit-identical")
}

// TestAssembleEdgeCluster_OptionValidation covers the fail-fast option
// checks: no partial configuration accompanies any failure.
func TestAssembleEdgeCluster_OptionValidation(t *testing.T) {
	screw := dislocation.DefaultOptions()
	screw.CLE = dislocation.SolverMode("screw")
	c, err := dislocation.AssembleEdgeCluster("Cu", 3, screw)
	assert.ErrorIs(t, err, dislocation.ErrUnknownSolver)
	assert.Nil(t, c)

	c, err = dislocation.AssembleEdgeCluster("Cu", 0, dislocation.DefaultOptions())
	assert.ErrorIs(t, err, dislocation.ErrBadRadius)
	assert.Nil(t, c)

	aniso := dislocation.DefaultOptions()
	aniso.CLE = dislocation.Anisotropic
	c, err = dislocation.AssembleEdgeCluster("Cu", 3, aniso)
	assert.ErrorIs(t, err, dislocation.ErrMissingModuli)
	assert.Nil(t, c)

	c, err = dislocation.AssembleEdgeCluster("Unobtainium", 3, dislocation.DefaultOptions())
	assert.ErrorIs(t, err, crystal.ErrUnknownSpecies)
	assert.Nil(t, c)
}

// TestAssembleEdgeCluster_CuScenario pins the standard copper run: periodic
// only along the line axis, the core strictly off-atom yet inside the first
// coordination shell.
func TestAssembleEdgeCluster_CuScenario(t *testing.T) {
	c, err := dislocation.AssembleEdgeCluster("Cu", 3, dislocation.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, [3]bool{false, false, true}, c.Config.PBC())
	assert.Equal(t, "Cu", c.Config.Species())
	assert.Equal(t, 3.615, c.LatticeConstant)

	a := c.LatticeConstant
	pos := c.Config.Positions()
	nearest := math.Inf(1)
	for i := 0; i < c.Config.NAtoms(); i++ {
		dx := pos.At(i, 0) - c.Core[0]
		dy := pos.At(i, 1) - c.Core[1]
		if d := math.Hypot(dx, dy); d < nearest {
			nearest = d
		}
	}
	assert.Greater(t, nearest, 0.05*a, "core must never coincide with an atom")
	assert.Less(t, nearest, 1.0*a, "core must sit inside the cluster, not at its edge")
}

// TestAssembleEdgeCluster_Anisotropic runs the full anisotropic pipeline
// with the copper stiffness rotated into the edge frame, strict stability
// check enabled.
func TestAssembleEdgeCluster_Anisotropic(t *testing.T) {
	v, err := elastic.EdgeFrameVoigt(cuC11, cuC12, cuC44)
	require.NoError(t, err)

	opts := dislocation.DefaultOptions()
	opts.CLE = dislocation.Anisotropic
	opts.Moduli = v
	opts.Strict = true

	c, err := dislocation.AssembleEdgeCluster("Cu", 3, opts)
	require.NoError(t, err)
	assert.Equal(t, [3]bool{false, false, true}, c.Config.PBC())

	pos := c.Config.Positions()
	for i := 0; i < c.Config.NAtoms(); i++ {
		for j := 0; j < 3; j++ {
			assert.False(t, math.IsNaN(pos.At(i, j)), "position (%d,%d) must be finite", i, j)
		}
	}
}

// TestAssembleEdgeCluster_StrictRejectsUnstable verifies strict mode blocks
// an indefinite stiffness before any replication work.
func TestAssembleEdgeCluster_StrictRejectsUnstable(t *testing.T) {
	opts := dislocation.DefaultOptions()
	opts.CLE = dislocation.Anisotropic
	opts.Moduli = elastic.CubicVoigt(100, 150, 50) // violates c11 − c12 > 0
	opts.Strict = true

	c, err := dislocation.AssembleEdgeCluster("Cu", 3, opts)
	assert.ErrorIs(t, err, elastic.ErrUnstable)
	assert.Nil(t, c)
}
