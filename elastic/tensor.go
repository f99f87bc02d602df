package elastic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CubicTensor builds the 4-index stiffness of a cubic crystal from its three
// independent constants:
//
//	C_ijkl = c12·δij·δkl + c44·(δik·δjl + δil·δjk) + (c11 − c12 − 2c44)·Σa δia·δja·δka·δla
//
// Complexity: O(1) (81 entries).
func CubicTensor(c11, c12, c44 float64) *Tensor {
	var t Tensor
	aniso := c11 - c12 - 2*c44
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					v := 0.0
					if i == j && k == l {
						v += c12
					}
					if i == k && j == l {
						v += c44
					}
					if i == l && j == k {
						v += c44
					}
					if i == j && j == k && k == l {
						v += aniso
					}
					t[i][j][k][l] = v
				}
			}
		}
	}

	return &t
}

// Rotate returns the stiffness expressed in a new orthonormal frame whose
// axes are the rows of r: C'_ijkl = R_ia·R_jb·R_kc·R_ld·C_abcd.
// The receiver is not mutated. Returns ErrBadShape for non-3×3 input and
// ErrBadRotation if r is not proper orthonormal within rotTol.
// Complexity: O(1) (3^8 multiply-adds).
func (t *Tensor) Rotate(r *mat.Dense) (*Tensor, error) {
	if r == nil {
		return nil, ErrBadShape
	}
	if rows, cols := r.Dims(); rows != 3 || cols != 3 {
		return nil, ErrBadShape
	}
	if err := checkProperRotation(r); err != nil {
		return nil, err
	}

	var out Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					sum := 0.0
					for a := 0; a < 3; a++ {
						for b := 0; b < 3; b++ {
							for c := 0; c < 3; c++ {
								for d := 0; d < 3; d++ {
									sum += r.At(i, a) * r.At(j, b) * r.At(k, c) * r.At(l, d) * t[a][b][c][d]
								}
							}
						}
					}
					out[i][j][k][l] = sum
				}
			}
		}
	}

	return &out, nil
}

// Voigt contracts the 4-index stiffness to its 6×6 Voigt form. This is the
// named tensor→Voigt entry point; the inverse lives on Voigt.Tensor.
func (t *Tensor) Voigt() *Voigt {
	m := mat.NewSymDense(6, nil)
	for p := 0; p < 6; p++ {
		for q := p; q < 6; q++ {
			i, j := voigtPairs[p][0], voigtPairs[p][1]
			k, l := voigtPairs[q][0], voigtPairs[q][1]
			m.SetSym(p, q, t[i][j][k][l])
		}
	}

	return &Voigt{m: m}
}

// checkProperRotation verifies RᵀR = I entrywise within rotTol and det R > 0.
func checkProperRotation(r *mat.Dense) error {
	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(rtr.At(i, j)-want) > rotTol {
				return ErrBadRotation
			}
		}
	}
	if mat.Det(r) <= 0 {
		return ErrBadRotation
	}

	return nil
}
