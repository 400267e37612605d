package symmetry

import (
	"github.com/katalvlaran/torustri/lattice"
)

// Map is an affine transform x -> Linear*x + Offset over lattice points.
// It is a comparable value type; equality is structural.
type Map struct {
	Linear [lattice.Dim][lattice.Dim]int
	Offset [lattice.Dim]int
}

// Identity returns the identity Map.
func Identity() Map {
	var m Map
	for i := 0; i < lattice.Dim; i++ {
		m.Linear[i][i] = 1
	}
	return m
}

// Translation returns the Map that adds the given offset.
func Translation(offset [lattice.Dim]int) Map {
	m := Identity()
	m.Offset = offset
	return m
}

// Apply transforms a single point.
// Complexity: O(Dim²).
func (m Map) Apply(p lattice.Point) lattice.Point {
	var out lattice.Point
	for i := 0; i < lattice.Dim; i++ {
		x := m.Offset[i]
		for j := 0; j < lattice.Dim; j++ {
			x += m.Linear[i][j] * p[j]
		}
		out[i] = x
	}
	return out
}

// ApplyAll transforms an ordered tuple pointwise, preserving tuple order.
// Complexity: O(Dim²·len(pts)).
func (m Map) ApplyAll(pts []lattice.Point) []lattice.Point {
	out := make([]lattice.Point, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// Compose returns m∘n, the Map applying n first and then m.
// Complexity: O(Dim³).
func (m Map) Compose(n Map) Map {
	var out Map
	for i := 0; i < lattice.Dim; i++ {
		for j := 0; j < lattice.Dim; j++ {
			s := 0
			for k := 0; k < lattice.Dim; k++ {
				s += m.Linear[i][k] * n.Linear[k][j]
			}
			out.Linear[i][j] = s
		}
		x := m.Offset[i]
		for k := 0; k < lattice.Dim; k++ {
			x += m.Linear[i][k] * n.Offset[k]
		}
		out.Offset[i] = x
	}
	return out
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Map) IsIdentity() bool {
	return m == Identity()
}
