// Package dislo generates initial ("predictor") atomic configurations for
// straight edge dislocations in cubic crystals, ready to be handed to an
// atomistic relaxation code.
//
// 🚀 What does dislo do?
//
//	Given an FCC species and a target radius it:
//		• validates that the species really crystallizes in the assumed lattice
//		• builds a unit cell oriented so the Burgers vector and the dislocation
//		  line align with coordinate axes
//		• replicates that cell into a finite cluster
//		• displaces every atom by the continuum linear-elasticity (CLE) solution
//		  for an edge dislocation — isotropic or fully anisotropic
//		• optionally truncates the cluster to a disk around the core
//
// ✨ Why choose dislo?
//
//   - Deterministic — identical inputs yield bit-identical configurations
//   - Value semantics — every pipeline stage returns a fresh configuration;
//     nothing is mutated behind your back
//   - Explicit failures — every error is a sentinel, matched with errors.Is
//   - Pure Go — no cgo, no I/O, no goroutines
//
// Everything is organized under four subpackages:
//
//	crystal/     — species registry, bulk cells, lattice validation, configurations
//	elastic/     — stiffness moduli: 4-index tensors, Voigt 6×6, rotations, checks
//	cle/         — continuum linear-elasticity displacement-field solvers
//	dislocation/ — oriented unit cell, cluster assembly and truncation
//
// Quick start:
//
//	cl, err := dislocation.AssembleEdgeCluster("Cu", 8.0, dislocation.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(cl.Config.NAtoms(), cl.Core)
//
// Relaxing the configuration, dislocation energies and screw/mixed lines are
// out of scope; see each subpackage's doc.go for details.
package dislo
