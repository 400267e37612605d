package lattice

// Dim is the ambient dimension of the construction. The whole module is
// written against this constant; nothing else hard-codes the value 4.
const Dim = 4

// Point is an integer point of the Dim-dimensional coordinate lattice.
// It is a value type: copies are independent and equality is structural,
// so Point is usable as a map key.
type Point [Dim]int

// Translate returns a copy of p with the given axis shifted by amount.
// Complexity: O(1).
func (p Point) Translate(axis, amount int) Point {
	p[axis] += amount
	return p
}

// Less reports whether p precedes q in lexicographic coordinate order.
// Used everywhere a deterministic order over points is needed.
// Complexity: O(Dim).
func (p Point) Less(q Point) bool {
	for i := 0; i < Dim; i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return false
}

// floorDiv returns the floor of a/b for positive b. Go's integer division
// truncates toward zero; period folding needs floor semantics so that
// negative coordinates reduce into [0, b) as well.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
