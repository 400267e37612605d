package cells

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/torustri/lattice"
)

// MaxVertices is the largest tuple length a collection accepts: a
// top-dimensional simplex has Dim+1 vertices.
const MaxVertices = lattice.Dim + 1

// Simplex is an ordered tuple of lattice points. Its dimension is
// len(s)-1; the empty simplex has dimension -1 (the augmentation cell).
// Simplices are treated as immutable values once constructed.
type Simplex []lattice.Point

// Canon maps a simplex to the canonical representative of its class
// under one identification regime. Canonicalization must preserve tuple
// length and be idempotent; the identity is the raw regime's Canon.
type Canon func(s Simplex) Simplex

// Dim returns the dimension of the simplex.
func (s Simplex) Dim() int { return len(s) - 1 }

// Clone returns an independent copy.
func (s Simplex) Clone() Simplex {
	out := make(Simplex, len(s))
	copy(out, s)
	return out
}

// Equal reports structural equality of the ordered tuples.
func (s Simplex) Equal(t Simplex) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Less compares ordered tuples lexicographically (shorter first on a
// shared prefix). Used for canonical representative selection and for
// order-stable listings.
func (s Simplex) Less(t Simplex) bool {
	for i := 0; i < len(s) && i < len(t); i++ {
		if s[i] != t[i] {
			return s[i].Less(t[i])
		}
	}
	return len(s) < len(t)
}

// Faces returns the len(s) faces obtained by deleting one vertex each,
// in deletion-position order, relative order of the rest preserved.
// The empty simplex has no faces.
func (s Simplex) Faces() []Simplex {
	if len(s) == 0 {
		return nil
	}
	out := make([]Simplex, len(s))
	for i := range s {
		f := make(Simplex, 0, len(s)-1)
		f = append(f, s[:i]...)
		f = append(f, s[i+1:]...)
		out[i] = f
	}
	return out
}

// String renders the simplex as a tuple of points, e.g.
// "((0,0,0,0) (1,0,0,0))".
func (s Simplex) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("(%d,%d,%d,%d)", p[0], p[1], p[2], p[3]))
	}
	sb.WriteByte(')')
	return sb.String()
}

// key is a comparable encoding of a tuple of up to MaxVertices points.
type key struct {
	n int
	v [MaxVertices]lattice.Point
}

// tupleKey encodes the ordered tuple.
func tupleKey(s Simplex) key {
	var k key
	k.n = len(s)
	copy(k.v[:], s)
	return k
}

// setKey encodes the underlying vertex set: the tuple sorted
// lexicographically. Two simplices share a setKey exactly when they are
// orderings of the same vertices.
func setKey(s Simplex) key {
	sorted := s.Clone()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return tupleKey(sorted)
}
