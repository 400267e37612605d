// Package cubetri decomposes a unit 4-cube into 4-simplices under a
// prescribed total order of its 16 corners.
//
// What:
//
//   - Triangulation: the staircase (Freudenthal) decomposition of one
//     unit cube into 24 top-dimensional simplices, one per maximal chain
//     of the Boolean lattice on the cube's corners. The vertex order
//     within each simplex is the prescribed corner order restricted to
//     the simplex's vertex set.
//
// Why:
//
//   - The corner order is the datum that decides whether the quotient of
//     the assembled complex is a valid Δ-complex. A single cube accepts
//     any corner permutation; compatibility across cube copies and group
//     images is the orbit builder's consistency machinery to judge.
//
// The package is stateless and pure: it knows nothing about periods,
// translations, or the symmetry group.
//
// Errors:
//
//   - ErrCornerCount: not exactly 2^Dim corners.
//   - ErrDuplicateCorner: a corner listed twice.
//   - ErrNotCube: the corner set is not offset+{0,1}^Dim for any offset.
package cubetri
