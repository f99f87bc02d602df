package elastic

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CubicVoigt builds the 6×6 Voigt stiffness of a cubic crystal in its
// natural ⟨100⟩ frame: c11 on the normal diagonal, c12 between normal
// components, c44 on the shear diagonal.
func CubicVoigt(c11, c12, c44 float64) *Voigt {
	m := mat.NewSymDense(6, nil)
	for i := 0; i < 3; i++ {
		m.SetSym(i, i, c11)
		m.SetSym(i+3, i+3, c44)
		for j := i + 1; j < 3; j++ {
			m.SetSym(i, j, c12)
		}
	}

	return &Voigt{m: m}
}

// FromDense validates a general 6×6 matrix and wraps it as a Voigt
// stiffness. The input must be 6×6 (ErrBadShape) and symmetric within SymTol
// (ErrAsymmetric); it is deep-copied.
func FromDense(d *mat.Dense) (*Voigt, error) {
	if d == nil {
		return nil, ErrBadShape
	}
	if r, c := d.Dims(); r != 6 || c != 6 {
		return nil, ErrBadShape
	}
	if err := CheckSymmetric(d, SymTol); err != nil {
		return nil, err
	}
	m := mat.NewSymDense(6, nil)
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			m.SetSym(i, j, d.At(i, j))
		}
	}

	return &Voigt{m: m}, nil
}

// Tensor expands the Voigt matrix back to the full 4-index stiffness. This
// is the named Voigt→tensor entry point; the inverse lives on Tensor.Voigt.
func (v *Voigt) Tensor() *Tensor {
	var t Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					t[i][j][k][l] = v.m.At(voigtIndex(i, j), voigtIndex(k, l))
				}
			}
		}
	}

	return &t
}

// EdgeFrameVoigt expresses cubic constants (c11, c12, c44) in the
// edge-dislocation frame x=[110], y=[001], z=[1-10] and contracts the result
// to Voigt form. This is the moduli provider the anisotropic cluster
// pipeline consumes for cubic FCC crystals.
func EdgeFrameVoigt(c11, c12, c44 float64) (*Voigt, error) {
	s := 1.0 / math.Sqrt2
	r := mat.NewDense(3, 3, []float64{
		s, s, 0,
		0, 0, 1,
		s, -s, 0,
	})
	rot, err := CubicTensor(c11, c12, c44).Rotate(r)
	if err != nil {
		return nil, err
	}

	return rot.Voigt(), nil
}

// CheckSymmetric verifies |d[i,j] − d[j,i]| ≤ eps for all entries.
// Returns ErrAsymmetric on the first violation.
func CheckSymmetric(d *mat.Dense, eps float64) error {
	r, c := d.Dims()
	if r != c {
		return ErrAsymmetric
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(d.At(i, j)-d.At(j, i)) > eps {
				return ErrAsymmetric
			}
		}
	}

	return nil
}

// CheckStable verifies the elastic stability inequalities: the Voigt matrix
// must be positive definite. Implemented as a Cholesky factorization; a
// failed factorization means an unstable (or indefinite) stiffness and
// returns ErrUnstable.
//
// This is the strict-mode check the pipeline runs only on request; the
// default pipeline behavior leaves it off.
func CheckStable(v *Voigt) error {
	var ch mat.Cholesky
	if ok := ch.Factorize(v.m); !ok {
		return ErrUnstable
	}

	return nil
}
