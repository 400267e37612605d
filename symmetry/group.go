package symmetry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/torustri/lattice"
)

// Sentinel errors for group construction.
var (
	// ErrPeriodMismatch indicates a generator whose linear part does not
	// map the translation lattice of the space into itself, so the action
	// modulo translations is ill-defined.
	ErrPeriodMismatch = errors.New("symmetry: generator incompatible with period vector")
	// ErrInfiniteOrder indicates a generator whose order could not be
	// bounded within GroupOptions.MaxOrder compositions.
	ErrInfiniteOrder = errors.New("symmetry: generator order exceeds bound")
	// ErrClosureBound indicates the closure grew beyond
	// GroupOptions.MaxClosure elements.
	ErrClosureBound = errors.New("symmetry: group closure exceeds bound")
)

// GroupOptions bounds the closure computation. The bounds exist only to
// turn a misconfigured (non-finite) generator set into a configuration
// error instead of a hang.
type GroupOptions struct {
	// MaxOrder is the largest accepted order of a single generator.
	MaxOrder int
	// MaxClosure is the largest accepted size of the closed group.
	MaxClosure int
}

// DefaultGroupOptions returns MaxOrder=64, MaxClosure=4096.
func DefaultGroupOptions() GroupOptions {
	return GroupOptions{MaxOrder: 64, MaxClosure: 4096}
}

// Group is a generator list closed into the full finite group acting on
// the torus (i.e. modulo the translation lattice of the space).
// Immutable once constructed.
type Group struct {
	space *lattice.Space
	gens  []Map
	elems []Map
}

// NewGroup validates the generators against the space and computes the
// closure by repeated composition, folding translations away after every
// step. Termination is guaranteed by the options bounds; exceeding them
// is reported as a configuration error.
// Complexity: O(|G|·len(gens)·Dim³) for the closure of a group of size |G|.
func NewGroup(space *lattice.Space, gens []Map, opts GroupOptions) (*Group, error) {
	g := &Group{space: space, gens: make([]Map, len(gens))}
	copy(g.gens, gens)

	for i, gen := range g.gens {
		if err := g.checkLattice(gen); err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
		if _, err := g.Order(gen, opts.MaxOrder); err != nil {
			return nil, fmt.Errorf("generator %d: %w", i, err)
		}
	}

	// Breadth-first closure over normalized elements.
	id := g.normalize(Identity())
	seen := map[Map]struct{}{id: {}}
	queue := []Map{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, gen := range g.gens {
			next := g.normalize(gen.Compose(cur))
			if _, ok := seen[next]; ok {
				continue
			}
			if len(seen) >= opts.MaxClosure {
				return nil, fmt.Errorf("%d elements: %w", len(seen), ErrClosureBound)
			}
			seen[next] = struct{}{}
			g.elems = append(g.elems, next)
			queue = append(queue, next)
		}
	}
	g.elems = append(g.elems, id)
	sort.Slice(g.elems, func(i, j int) bool { return mapLess(g.elems[i], g.elems[j]) })

	return g, nil
}

// checkLattice verifies that gen maps the translation lattice into
// itself: Linear[i][j]*period[j] must vanish modulo period[i].
func (g *Group) checkLattice(gen Map) error {
	periods := g.space.Periods()
	for i := 0; i < lattice.Dim; i++ {
		for j := 0; j < lattice.Dim; j++ {
			if (gen.Linear[i][j]*periods[j])%periods[i] != 0 {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrPeriodMismatch)
			}
		}
	}
	return nil
}

// normalize reduces the translation part modulo the period vector, so
// that Maps equal modulo translations compare equal.
func (g *Group) normalize(m Map) Map {
	m.Offset = [lattice.Dim]int(g.space.Reduce(lattice.Point(m.Offset)))
	return m
}

// Order returns the smallest k >= 1 with m^k = identity modulo the
// translation lattice, or ErrInfiniteOrder if no such k <= limit exists.
// Complexity: O(limit·Dim³).
func (g *Group) Order(m Map, limit int) (int, error) {
	acc := g.normalize(m)
	for k := 1; k <= limit; k++ {
		if acc == g.normalize(Identity()) {
			return k, nil
		}
		acc = g.normalize(m.Compose(acc))
	}
	return 0, fmt.Errorf("limit %d: %w", limit, ErrInfiniteOrder)
}

// Elements returns the closed group, identity included, in a stable
// deterministic order.
func (g *Group) Elements() []Map {
	out := make([]Map, len(g.elems))
	copy(out, g.elems)
	return out
}

// Generators returns a copy of the configured generator list.
func (g *Group) Generators() []Map {
	out := make([]Map, len(g.gens))
	copy(out, g.gens)
	return out
}

// Space returns the lattice space the group acts on.
func (g *Group) Space() *lattice.Space { return g.space }

// OrbitPoint returns the distinct canonical (period-reduced) images of p
// under the group, in lexicographic order.
func (g *Group) OrbitPoint(p lattice.Point) []lattice.Point {
	orb := g.Orbit([]lattice.Point{p})
	out := make([]lattice.Point, len(orb))
	for i, t := range orb {
		out[i] = t[0]
	}
	return out
}

// Orbit returns the distinct images of the ordered tuple under the
// group, each folded to the fundamental region, in lexicographic order.
// Maps act pointwise; tuple order is preserved. An image collapsing two
// distinct points of the tuple to the same lattice point is degenerate
// and dropped.
// Complexity: O(|orbit|·len(gens)·Dim²·len(s)).
func (g *Group) Orbit(s []lattice.Point) [][]lattice.Point {
	start := g.space.Fold(s)
	seen := map[string]struct{}{tupleID(start): {}}
	orbit := [][]lattice.Point{start}
	queue := [][]lattice.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, gen := range g.gens {
			img := g.space.Fold(gen.ApplyAll(cur))
			if degenerate(img) {
				continue
			}
			id := tupleID(img)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			orbit = append(orbit, img)
			queue = append(queue, img)
		}
	}
	sort.Slice(orbit, func(i, j int) bool { return tupleLess(orbit[i], orbit[j]) })

	return orbit
}

// degenerate reports whether the tuple contains a repeated point.
func degenerate(pts []lattice.Point) bool {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i] == pts[j] {
				return true
			}
		}
	}
	return false
}

// tupleLess compares point tuples lexicographically.
func tupleLess(a, b []lattice.Point) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}

// tupleID encodes a tuple as a map key.
func tupleID(pts []lattice.Point) string {
	var sb strings.Builder
	for _, p := range pts {
		for _, x := range p {
			sb.WriteString(strconv.Itoa(x))
			sb.WriteByte(',')
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

// mapLess orders Maps deterministically: linear part first, then offset.
func mapLess(a, b Map) bool {
	for i := 0; i < lattice.Dim; i++ {
		for j := 0; j < lattice.Dim; j++ {
			if a.Linear[i][j] != b.Linear[i][j] {
				return a.Linear[i][j] < b.Linear[i][j]
			}
		}
	}
	for i := 0; i < lattice.Dim; i++ {
		if a.Offset[i] != b.Offset[i] {
			return a.Offset[i] < b.Offset[i]
		}
	}
	return false
}
