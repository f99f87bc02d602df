// Package elastic represents elastic stiffness moduli in the two standard
// forms used by continuum dislocation theory and converts between them:
//
//   - Tensor — the full 4-index stiffness C_ijkl (3×3×3×3), rotatable into
//     an arbitrary orthonormal frame
//   - Voigt  — the contracted symmetric 6×6 stiffness matrix
//
// The two conversions are explicitly named entry points — Tensor.Voigt and
// Voigt.Tensor — rather than shape-sniffing dispatch, so callers always state
// which representation they hold.
//
// ✨ Key features:
//   - CubicTensor / CubicVoigt — cubic crystals from (c11, c12, c44)
//   - Tensor.Rotate — congruent rotation by a proper orthonormal basis
//   - EdgeFrameVoigt — cubic constants expressed in the edge-dislocation
//     frame x=[110], y=[001], z=[1-10]
//   - CheckSymmetric / CheckStable — optional strict-mode validation:
//     symmetry within a tolerance, positive definiteness via Cholesky
//
// The strict checks are deliberately not baked into the constructors: the
// dislocation pipeline runs them only when asked to (Options.Strict), and
// they are skipped by default.
//
// Errors are package sentinels (ErrBadShape, ErrAsymmetric, ErrUnstable,
// ErrBadRotation) matched via errors.Is.
package elastic
