// Package lattice models the integer 4-dimensional coordinate space in
// which the whole construction lives, together with its periodic
// identifications.
//
// What:
//
//   - Point: an immutable integer 4-tuple with structural equality.
//   - Space: a per-axis period vector (p0,p1,p2,p3) of positive integers.
//   - Reduce: canonical representative of a point modulo the periods,
//     each coordinate folded into [0, period_i).
//   - Fold: fundamental-region representative of a point tuple — a single
//     per-axis translation by a period multiple so that the minimum
//     coordinate lands in [0, period_i). Unlike Reduce it never tears a
//     tuple apart: all points move together.
//
// Why:
//
//   - Reduce identifies opposite faces of the covering torus.
//   - Fold picks one raw copy of a cell out of its translation class,
//     which is how translation-quotient cells are represented.
//
// Errors:
//
//   - ErrBadPeriod: a period entry is zero or negative.
package lattice
