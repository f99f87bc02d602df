package crystal_test

import (
	"testing"

	"github.com/latmech/dislo/crystal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestNewConfig_ShapeValidation ensures malformed cell or position matrices
// are rejected with ErrBadShape.
func TestNewConfig_ShapeValidation(t *testing.T) {
	cell := mat.NewDense(3, 3, nil)
	pos := mat.NewDense(2, 3, nil)

	_, err := crystal.NewConfig("Cu", mat.NewDense(2, 3, nil), pos, [3]bool{})
	assert.ErrorIs(t, err, crystal.ErrBadShape, "non-3×3 cell must error")

	_, err = crystal.NewConfig("Cu", cell, mat.NewDense(2, 2, nil), [3]bool{})
	assert.ErrorIs(t, err, crystal.ErrBadShape, "non-N×3 positions must error")

	_, err = crystal.NewConfig("Cu", cell, pos, [3]bool{})
	assert.NoError(t, err)
}

// TestConfig_ValueSemantics verifies accessors hand out copies: mutating a
// returned matrix must not leak into the Config.
func TestConfig_ValueSemantics(t *testing.T) {
	cfg, err := crystal.CubicBulk("Cu")
	require.NoError(t, err)

	p := cfg.Positions()
	p.Set(0, 0, 99.0)
	assert.Equal(t, 0.0, cfg.Positions().At(0, 0), "Positions must return a deep copy")

	c := cfg.Cell()
	c.Set(0, 0, -1.0)
	assert.Equal(t, 3.615, cfg.Cell().At(0, 0), "Cell must return a deep copy")
}

// TestReplicate_CountsAndOrder checks replica atom counts, scaled cell rows,
// and that the source configuration stays untouched.
func TestReplicate_CountsAndOrder(t *testing.T) {
	cfg, err := crystal.CubicBulk("Cu")
	require.NoError(t, err)

	rep, err := cfg.Replicate(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 4*2*3*1, rep.NAtoms(), "atom count scales with replica counts")

	cell := rep.Cell()
	assert.InDelta(t, 2*3.615, cell.At(0, 0), 1e-12, "row 0 scaled by n1")
	assert.InDelta(t, 3*3.615, cell.At(1, 1), 1e-12, "row 1 scaled by n2")
	assert.InDelta(t, 1*3.615, cell.At(2, 2), 1e-12, "row 2 scaled by n3")

	assert.Equal(t, 4, cfg.NAtoms(), "source configuration is not mutated")
}

// TestReplicate_BadCounts ensures counts below one fail with
// ErrBadReplicaCount.
func TestReplicate_BadCounts(t *testing.T) {
	cfg, err := crystal.CubicBulk("Cu")
	require.NoError(t, err)

	_, err = cfg.Replicate(0, 1, 1)
	assert.ErrorIs(t, err, crystal.ErrBadReplicaCount)
	_, err = cfg.Replicate(1, -2, 1)
	assert.ErrorIs(t, err, crystal.ErrBadReplicaCount)
}

// TestWithPBC_FreshValue verifies WithPBC returns a new Config and leaves
// the receiver's flags alone.
func TestWithPBC_FreshValue(t *testing.T) {
	cfg, err := crystal.CubicBulk("Cu")
	require.NoError(t, err)

	out := cfg.WithPBC([3]bool{false, false, true})
	assert.Equal(t, [3]bool{false, false, true}, out.PBC())
	assert.Equal(t, [3]bool{true, true, true}, cfg.PBC(), "receiver flags unchanged")
}
