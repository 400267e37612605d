// Package builder orchestrates the construction of the Δ-complex: it
// expands seed simplices into their orbits under the translation lattice
// and the symmetry group, and populates three parallel cell collections.
//
// What:
//
//   - Builder: one construction session over a lattice.Space and a
//     symmetry.Group, holding the three collections:
//     Raw      — fundamental-domain cells in covering-box coordinates,
//     no group identification (sanity baseline: a box).
//     Torus    — translation classes, represented by the
//     fundamental-region fold (sanity baseline: the 4-torus).
//     Quotient — full classes under translations and the group,
//     represented by the least folded orbit member (the target).
//   - AddSimplexOrbit: the single entry point per seed simplex; inserts
//     the seed's whole orbit and every face of every image, so closure
//     holds by construction.
//   - AddAll: the same over a bounded worker pool; orbit insertion is
//     idempotent and order-independent, so seeds may be processed in
//     parallel (violations are aggregated, never raised eagerly).
//   - Validate: the exhaustive consistency pass; returns a structured
//     Report and seals the collections on success.
//
// Why:
//
//   - Almost any ad hoc corner ordering fails Δ-complex consistency
//     somewhere among the thousands of orbit images. The builder makes
//     every recurrence observable and reports conflicts instead of
//     guessing a resolution.
//
// Errors:
//
//   - ErrNilSpace / ErrNilGroup: missing configuration.
//   - ErrBuildSealed: adding seeds after validation sealed the session.
//   - Order conflicts are not errors of AddSimplexOrbit: they are
//     aggregated per collection and surfaced through Validate's Report.
package builder
