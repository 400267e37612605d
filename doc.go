// Package torustri builds semi-simplicial (Δ-complex) models of the
// 4-dimensional torus and its quotients by finite affine symmetry
// groups.
//
// 🚀 What is torustri?
//
//	A combinatorial construction kit that brings together:
//		• Lattice primitives: integer points, period reduction, fundamental-region folding
//		• Affine symmetries: generator validation, finite closure, tuple orbits
//		• Cube triangulations: the staircase decomposition under a prescribed corner order
//		• Orbit building: three parallel cell collections (raw box / torus / full quotient)
//		• Consistency validation: every recurring vertex set must carry one identical order
//		• Export: sealed collections flattened to a JSON Δ-complex for algebra engines
//
// ✨ Why torustri?
//
//   - Ordered simplices, not simplicial sets — the cheap structure that
//     still supports boundary operators downstream
//   - Conflicts are reported, never resolved by guessing: a corner
//     ordering either works for the whole quotient or the report says
//     exactly where it breaks
//   - Deterministic — stable orders everywhere, safe parallel building
//
// Under the hood, everything is organized under six subpackages:
//
//	lattice/  — points, periods, Reduce & Fold
//	symmetry/ — affine Maps, finite Group closure, orbits
//	cubetri/  — staircase triangulation of one unit 4-cube
//	cells/    — ordered simplices & conflict-detecting collections
//	builder/  — orbit expansion, the three collections, validation
//	delta/    — the exported Δ-complex form
//
// The cmd/torustri CLI drives a full scenario from a TOML file; see
// torustri.toml for the reference configuration.
//
//	go get github.com/katalvlaran/torustri
package torustri
