// Package cells holds the combinatorial cell data of the construction:
// ordered simplices and the collections that accumulate them under a
// fixed identification regime.
//
// What:
//
//   - Simplex: an ordered tuple of lattice points; dimension = length-1.
//     The empty tuple is the single (-1)-dimensional augmentation cell.
//     Ordering is significant: it is exactly the datum that makes the
//     result a Δ-complex rather than a bare simplicial complex.
//   - Faces: the vertex-deletion faces in position order.
//   - Collection: a dimension-indexed set of distinct simplices with an
//     order-conflict index — two inserts sharing a vertex set but
//     disagreeing on order are recorded as a Violation, never merged or
//     overwritten.
//
// Why:
//
//   - The consistency invariant of a Δ-complex is that every recurrence
//     of an underlying vertex set carries one and the same order. The
//     sorted-tuple index makes each conflicting recurrence observable at
//     insert time.
//
// Concurrency:
//
//   - Collection guards all mutation with an RWMutex, so independent
//     workers may insert concurrently; after Seal it is read-only and
//     safe to read without synchronization.
//
// Errors:
//
//   - ErrVertexOrder: an insert conflicted with the stored order for the
//     same vertex set.
//   - ErrSimplexSize: a tuple longer than Dim+1 vertices.
//   - ErrSealed: an insert after the collection was sealed.
package cells
