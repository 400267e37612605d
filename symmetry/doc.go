// Package symmetry models the finite group of affine symmetries acting on
// the periodic lattice, and the orbits of points and ordered point tuples
// under it.
//
// What:
//
//   - Map: an affine transform (integer linear part + translation),
//     closed under composition.
//   - Group: a generator list closed into the full finite group acting
//     modulo the translation lattice of a lattice.Space.
//   - Orbit / OrbitPoint: all distinct images of an ordered tuple (or a
//     single point) under the group, folded to the fundamental region
//     after every application. A Map acts pointwise on a tuple — it never
//     permutes the tuple.
//
// Why:
//
//   - The quotient space is the torus modulo this group; every cell of
//     the complex is expanded into its orbit during construction.
//
// Errors:
//
//   - ErrPeriodMismatch: a generator does not preserve the translation
//     lattice implied by the period vector.
//   - ErrInfiniteOrder: a generator's order exceeds the configured bound,
//     so the closure cannot be proven finite.
//   - ErrClosureBound: the closure grew past the configured maximum
//     group order.
//
// The golden configuration uses two involutions generating a group of
// order 4 (Z2 x Z2); nothing in this package depends on that order.
package symmetry
