package cubetri

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/lattice"
)

// NumCorners is the corner count of a unit Dim-cube.
const NumCorners = 1 << lattice.Dim

// Sentinel errors for triangulation configuration.
var (
	// ErrCornerCount indicates the ordering does not list exactly
	// NumCorners corners.
	ErrCornerCount = errors.New("cubetri: ordering must list all cube corners")
	// ErrDuplicateCorner indicates a corner appears more than once.
	ErrDuplicateCorner = errors.New("cubetri: duplicate corner in ordering")
	// ErrNotCube indicates the corners are not those of one unit cube.
	ErrNotCube = errors.New("cubetri: corners do not form a unit cube")
)

// Triangulation is the staircase decomposition of one unit cube under a
// prescribed corner order. Immutable once constructed.
type Triangulation struct {
	corners [NumCorners]lattice.Point
	rank    map[lattice.Point]int
	offset  lattice.Point
}

// New validates the corner ordering and returns the triangulation.
// The ordering must be a permutation of offset+{0,1}^Dim for some
// integer offset; any permutation is accepted.
// Complexity: O(NumCorners·Dim).
func New(ordered []lattice.Point) (*Triangulation, error) {
	if len(ordered) != NumCorners {
		return nil, fmt.Errorf("got %d corners: %w", len(ordered), ErrCornerCount)
	}
	t := &Triangulation{rank: make(map[lattice.Point]int, NumCorners)}
	copy(t.corners[:], ordered)

	t.offset = ordered[0]
	for _, c := range ordered {
		for i := 0; i < lattice.Dim; i++ {
			if c[i] < t.offset[i] {
				t.offset[i] = c[i]
			}
		}
	}
	for pos, c := range ordered {
		if _, dup := t.rank[c]; dup {
			return nil, fmt.Errorf("corner %v: %w", c, ErrDuplicateCorner)
		}
		t.rank[c] = pos
		for i := 0; i < lattice.Dim; i++ {
			if d := c[i] - t.offset[i]; d != 0 && d != 1 {
				return nil, fmt.Errorf("corner %v: %w", c, ErrNotCube)
			}
		}
	}
	// NumCorners distinct corners inside offset+{0,1}^Dim is exactly the
	// full corner set.
	return t, nil
}

// Offset returns the minimal corner of the cube.
func (t *Triangulation) Offset() lattice.Point { return t.offset }

// Corners returns the corners in the prescribed order.
func (t *Triangulation) Corners() []lattice.Point {
	out := make([]lattice.Point, NumCorners)
	copy(out, t.corners[:])
	return out
}

// Simplices returns the Dim! top-dimensional simplices of the staircase
// triangulation: one per maximal chain of the Boolean lattice on the
// corners, each chain's vertices ordered by the prescribed corner order.
// Their union covers the cube; pairwise intersections are common faces,
// and every proper face is implied by face deletion.
// Complexity: O(Dim!·Dim).
func (t *Triangulation) Simplices() []cells.Simplex {
	perms := permutations(lattice.Dim)
	out := make([]cells.Simplex, 0, len(perms))
	for _, perm := range perms {
		chain := make(cells.Simplex, 0, lattice.Dim+1)
		v := t.offset
		chain = append(chain, v)
		for _, axis := range perm {
			v = v.Translate(axis, 1)
			chain = append(chain, v)
		}
		sort.Slice(chain, func(i, j int) bool {
			return t.rank[chain[i]] < t.rank[chain[j]]
		})
		out = append(out, chain)
	}
	return out
}

// permutations enumerates all permutations of 0..n-1 in a deterministic
// (lexicographic) order.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var rec func([]int, []int)
	rec = func(prefix, rest []int) {
		if len(rest) == 0 {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for i := range rest {
			next := make([]int, 0, len(rest)-1)
			next = append(next, rest[:i]...)
			next = append(next, rest[i+1:]...)
			rec(append(prefix, rest[i]), next)
		}
	}
	rec(nil, base)
	return out
}
