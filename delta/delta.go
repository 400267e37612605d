package delta

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/lattice"
)

// Sentinel errors for export.
var (
	// ErrNotSealed indicates an export attempt on a collection that has
	// not passed validation.
	ErrNotSealed = errors.New("delta: collection is not sealed")
	// ErrNotClosed indicates a stored cell whose canonicalized face is
	// not itself stored, so no boundary enumeration exists. A collection
	// sealed by a passing validation run never triggers it.
	ErrNotClosed = errors.New("delta: face closure broken under canonicalization")
)

// Complex is the exported Δ-complex: Cells[k] lists the k-simplices in
// lexicographic order, each as a tuple of indices into Vertices, and
// Boundary[k][i] lists, for the i-th k-simplex, the indices of its k+1
// faces within Cells[k-1], in vertex-deletion position order
// (Boundary[0] entries are empty; the augmentation cell stays internal).
//
// Boundary operators derive from Boundary, never from vertex-deletion
// on the id tuples: cell tuples are canonical representatives in
// covering coordinates, so for an identified collection Vertices may
// contain boundary points that are not themselves 0-cells (a torus
// edge can run from a 0-cell to its period translate, and its faces
// both resolve to that one 0-cell).
type Complex struct {
	Vertices []lattice.Point `json:"vertices"`
	Cells    [][][]int       `json:"cells"`
	Boundary [][][]int       `json:"boundary"`
}

// Dim returns the top dimension of the exported complex.
func (c *Complex) Dim() int { return len(c.Cells) - 1 }

// Export flattens the collection into a Complex. Vertex ids are assigned
// the first time a vertex is seen, scanning dimensions upward and each
// dimension in lexicographic order, so the assignment is stable across
// runs. canon must be the regime of the collection (Builder.CanonFor);
// nil means the identity (raw) regime. Each cell's faces are
// canonicalized and resolved to their stored representatives one
// dimension down; an unresolvable face yields ErrNotClosed.
// Complexity: O(total cells · Dim²).
func Export(coll *cells.Collection, canon cells.Canon) (*Complex, error) {
	if !coll.Sealed() {
		return nil, ErrNotSealed
	}
	if canon == nil {
		canon = func(s cells.Simplex) cells.Simplex { return s }
	}
	top := coll.Dim()
	ids := make(map[lattice.Point]int)
	out := &Complex{
		Cells:    make([][][]int, 0, top+1),
		Boundary: make([][][]int, 0, top+1),
	}
	var below map[string]int
	for dim := 0; dim <= top; dim++ {
		listed := coll.ByDim(dim)
		layer := make([][]int, 0, len(listed))
		bnd := make([][]int, 0, len(listed))
		pos := make(map[string]int, len(listed))
		for i, s := range listed {
			pos[s.String()] = i

			tuple := make([]int, len(s))
			for j, p := range s {
				id, ok := ids[p]
				if !ok {
					id = len(out.Vertices)
					ids[p] = id
					out.Vertices = append(out.Vertices, p)
				}
				tuple[j] = id
			}
			layer = append(layer, tuple)

			faces := make([]int, 0, len(s))
			if dim > 0 {
				for _, f := range s.Faces() {
					cf := canon(f)
					k, ok := below[cf.String()]
					if !ok {
						return nil, fmt.Errorf("cell %s face %s: %w", s, cf, ErrNotClosed)
					}
					faces = append(faces, k)
				}
			}
			bnd = append(bnd, faces)
		}
		out.Cells = append(out.Cells, layer)
		out.Boundary = append(out.Boundary, bnd)
		below = pos
	}
	return out, nil
}
