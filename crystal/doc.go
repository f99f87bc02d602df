// Package crystal provides the minimal atomistic toolkit the dislocation
// pipeline is built on: a registry of cubic elemental crystals, primitive and
// conventional bulk cells, lattice-structure validation, and an immutable
// atomic-configuration value type with replication.
//
// 🚀 What is a Config?
//
//	A Config bundles a 3×3 cell matrix (rows are cell vectors), an N×3 block
//	of Cartesian atom positions, per-axis periodic-boundary flags and the
//	species label. Configs follow strict value semantics: accessors hand out
//	deep copies and every transformation (Replicate, WithPositions, WithCell,
//	WithPBC) returns a fresh Config, so no two pipeline stages ever alias the
//	same storage.
//
// ✨ Key features:
//   - Known / Bulk / CubicBulk — cubic elemental crystals with tabulated
//     lattice constants (Å); primitive or conventional cells
//   - CheckFCC / CheckBCC — normalized cell-shape comparison against the
//     canonical FCC/BCC shape matrices (Frobenius distance ≤ 1e-12)
//   - LatticeConstant — the cubic lattice constant a, always positive
//   - Replicate — deterministic lexicographic replication into a supercell
//
// Matrices are gonum mat.Dense values; positions use the row-major N×3
// layout common for Cartesian atom coordinates.
//
// Errors are package sentinels (ErrUnknownSpecies, ErrStructureMismatch,
// ErrBadShape, ErrBadReplicaCount, ErrBadLatticeConstant) matched via
// errors.Is.
package crystal
