// Package crystal defines core types and sentinel errors for the
// crystal subpackage of github.com/latmech/dislo.
package crystal

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for crystal operations.
var (
	// ErrUnknownSpecies indicates the species label is not in the registry.
	ErrUnknownSpecies = errors.New("crystal: unknown species")
	// ErrStructureMismatch indicates the bulk structure's normalized shape
	// does not match the assumed lattice within shapeTol.
	ErrStructureMismatch = errors.New("crystal: bulk structure does not match assumed lattice")
	// ErrBadShape indicates a matrix argument has the wrong dimensions
	// (cell must be 3×3, positions must be N×3 with N ≥ 1).
	ErrBadShape = errors.New("crystal: invalid matrix shape")
	// ErrBadReplicaCount indicates a replication count below one.
	ErrBadReplicaCount = errors.New("crystal: replica counts must be ≥ 1")
	// ErrBadLatticeConstant indicates a non-positive cubic lattice constant.
	ErrBadLatticeConstant = errors.New("crystal: lattice constant must be positive")
)

// shapeTol is the Frobenius tolerance for normalized cell-shape comparison.
const shapeTol = 1e-12

// Lattice identifies a cubic Bravais lattice.
type Lattice int

const (
	// FCC is the face-centered cubic lattice.
	FCC Lattice = iota
	// BCC is the body-centered cubic lattice.
	BCC
)

// Config is an immutable atomic configuration: species label, 3×3 cell
// matrix (rows are cell vectors, exclusively owned), N×3 Cartesian atom
// positions, and per-axis periodic-boundary flags.
//
// All accessors return deep copies and all transformations return a fresh
// Config; a Config handed to a caller is never mutated afterwards.
type Config struct {
	species string
	cell    *mat.Dense // 3×3, owned
	pos     *mat.Dense // N×3, owned
	pbc     [3]bool
}

// NewConfig builds a Config from a species label, a 3×3 cell matrix, an N×3
// position block (N ≥ 1) and periodic flags. Both matrices are deep-copied.
// Returns ErrBadShape on wrong dimensions.
// Complexity: O(N) time and memory.
func NewConfig(species string, cell, pos *mat.Dense, pbc [3]bool) (*Config, error) {
	if cell == nil || pos == nil {
		return nil, ErrBadShape
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, ErrBadShape
	}
	n, c := pos.Dims()
	if n < 1 || c != 3 {
		return nil, ErrBadShape
	}
	cp := mat.DenseCopyOf(cell)
	pp := mat.DenseCopyOf(pos)

	return &Config{species: species, cell: cp, pos: pp, pbc: pbc}, nil
}

// Species returns the species label.
func (c *Config) Species() string { return c.species }

// NAtoms returns the number of atoms.
func (c *Config) NAtoms() int {
	n, _ := c.pos.Dims()
	return n
}

// Cell returns a deep copy of the 3×3 cell matrix.
func (c *Config) Cell() *mat.Dense { return mat.DenseCopyOf(c.cell) }

// Positions returns a deep copy of the N×3 position block.
func (c *Config) Positions() *mat.Dense { return mat.DenseCopyOf(c.pos) }

// PBC returns the periodic-boundary flags per axis.
func (c *Config) PBC() [3]bool { return c.pbc }

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		species: c.species,
		cell:    mat.DenseCopyOf(c.cell),
		pos:     mat.DenseCopyOf(c.pos),
		pbc:     c.pbc,
	}
}

// WithPositions returns a fresh Config carrying the given N×3 positions and
// this Config's cell, species and flags. The atom count may change (e.g.
// after truncation). Returns ErrBadShape on wrong dimensions.
func (c *Config) WithPositions(pos *mat.Dense) (*Config, error) {
	return NewConfig(c.species, c.cell, pos, c.pbc)
}

// WithCell returns a fresh Config carrying the given 3×3 cell matrix.
// Returns ErrBadShape on wrong dimensions.
func (c *Config) WithCell(cell *mat.Dense) (*Config, error) {
	return NewConfig(c.species, cell, c.pos, c.pbc)
}

// WithPBC returns a fresh Config carrying the given periodic flags.
func (c *Config) WithPBC(pbc [3]bool) *Config {
	out := c.Clone()
	out.pbc = pbc
	return out
}
