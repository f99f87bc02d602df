// Package dislocation generates initial atomic configurations for straight
// edge dislocations in FCC crystals: a predictor to be handed to an
// atomistic relaxation (out of scope here).
//
// 🚀 Pipeline (linear, no branching back):
//
//	Validate → BuildFrame → Replicate → LocateCore → Solve → Displace →
//	(Truncate) → Emit
//
//   - FCCEdgeFrame orients a unit cell so the Burgers vector lies along
//     axis 1, the slip-plane normal along axis 2 and the dislocation line
//     along axis 3 (edge lengths a/√2, a, a/√2), and fixes a core offset
//     strictly between lattice planes so the field singularity never lands
//     on an atom.
//   - AssembleEdgeCluster replicates that cell to cover a disk of radius
//     R·a/√2, anchors the core at the atom nearest the in-plane centroid
//     (first occurrence wins ties) plus the core offset, evaluates the
//     isotropic or anisotropic CLE field from package cle, displaces all
//     atoms, and optionally truncates to the disk.
//
// 🔒 Behavioral guarantees:
//   - deterministic — identical inputs yield bit-identical positions and
//     core coordinates
//   - value semantics — every stage emits a fresh crystal.Config; nothing
//     handed to the caller is mutated afterwards
//   - fail-fast — option defects (unknown solver mode, missing moduli,
//     non-positive radius) abort before any replication work, and no
//     partial configuration is ever returned alongside an error
//
// The final configuration is periodic only along the dislocation line
// (axis 3); both in-plane axes are open.
package dislocation
