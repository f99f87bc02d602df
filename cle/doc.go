// Package cle evaluates continuum linear-elasticity (CLE) displacement
// fields for a straight edge dislocation, given in-plane coordinates
// relative to the dislocation core.
//
// 🚀 What does it solve?
//
//	The classical Volterra edge dislocation: the line runs along the
//	out-of-plane axis, the Burgers vector of magnitude b along +x, the slip
//	plane is y = 0. Two interchangeable solvers map relative coordinates
//	(x, y) to displacements (ux, uy):
//
//	  • EdgeIsotropic   — closed form parameterized by the Poisson ratio ν
//	  • EdgeAnisotropic — full anisotropic solution parameterized by the 6×6
//	    Voigt stiffness in the dislocation frame (with EdgeAnisotropicTensor
//	    as the named 4-index entry point)
//
// ⚠️ Numerical hazards handled here:
//   - the arctangent arguments of the anisotropic form have removable
//     singularities along x = ±λy; a branch-consistent two-argument
//     arctangent is used throughout
//   - logarithm arguments are guarded against vanishing magnitude
//     (ErrSingularPoint) — an evaluation point sitting on the core is an
//     input defect, never silently smoothed over
//   - the anisotropic auxiliary angle φ is evaluated over complex numbers;
//     a solution whose imaginary part exceeds the tolerance signals a
//     defective stiffness and fails with ErrNonReal
//   - the isotropic limit sin 2φ → 0 degenerates the anisotropic form and
//     fails with ErrDegenerate rather than dividing by ~0
//
// Both solvers are pure: input slices are never mutated (the isotropic
// branch-cut shift works on a fresh copy) and results are deterministic.
//
// The general straight-dislocation solver (arbitrary line direction and
// Burgers vector) is intentionally unimplemented; Straight returns
// ErrNotImplemented.
package cle
