// Package delta flattens a sealed cell collection into the
// dimension-indexed, face-closed form consumed by an external
// chain-complex algebra engine.
//
// What:
//
//   - Complex: for each dimension 0..4, an order-stable list of the
//     distinct simplices, each a tuple of stable integer vertex ids
//     (assigned on first sight), plus the boundary enumeration: the
//     resolved indices of every cell's faces one dimension down, after
//     the collection's canonicalization. The engine derives boundary
//     operators from that enumeration and computes (co)homology,
//     generators, and cup products from them — none of that happens
//     here.
//
// Why:
//
//   - This is the sole hand-off boundary to the excluded algebra
//     subsystem. For identified collections (torus, quotient) the faces
//     of a canonical representative are other classes' representatives,
//     not literal sub-tuples, so face resolution needs the regime's
//     Canon (Builder.CanonFor) and must be exported — the engine cannot
//     reconstruct it from the id tuples. Persistence of the exported
//     structure is the caller's concern (the CLI writes it as JSON).
//
// Errors:
//
//   - ErrNotSealed: the collection has not passed validation. A
//     collection that failed its consistency report is never exported.
//   - ErrNotClosed: a canonicalized face has no stored representative;
//     impossible after a passing validation run.
package delta
