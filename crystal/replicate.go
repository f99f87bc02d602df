package crystal

import "gonum.org/v1/gonum/mat"

// Replicate tiles the configuration n1×n2×n3 times along its cell vectors
// and returns a fresh Config: the cell rows are scaled by the counts and the
// atom list is laid out in lexicographic (i1, i2, i3, atom) order, which
// fixes the iteration order downstream consumers may rely on for
// deterministic tie-breaking. The receiver is not mutated.
// Returns ErrBadReplicaCount if any count is below one.
// Complexity: O(N·n1·n2·n3) time and memory.
func (c *Config) Replicate(n1, n2, n3 int) (*Config, error) {
	if n1 < 1 || n2 < 1 || n3 < 1 {
		return nil, ErrBadReplicaCount
	}
	counts := [3]int{n1, n2, n3}
	n := c.NAtoms()

	// Scaled cell: row k multiplied by counts[k].
	cell := mat.NewDense(3, 3, nil)
	for k := 0; k < 3; k++ {
		for j := 0; j < 3; j++ {
			cell.Set(k, j, float64(counts[k])*c.cell.At(k, j))
		}
	}

	pos := mat.NewDense(n*n1*n2*n3, 3, nil)
	row := 0
	for i1 := 0; i1 < n1; i1++ {
		for i2 := 0; i2 < n2; i2++ {
			for i3 := 0; i3 < n3; i3++ {
				for a := 0; a < n; a++ {
					for j := 0; j < 3; j++ {
						shift := float64(i1)*c.cell.At(0, j) +
							float64(i2)*c.cell.At(1, j) +
							float64(i3)*c.cell.At(2, j)
						pos.Set(row, j, c.pos.At(a, j)+shift)
					}
					row++
				}
			}
		}
	}

	return &Config{species: c.species, cell: cell, pos: pos, pbc: c.pbc}, nil
}
