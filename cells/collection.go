package cells

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/torustri/lattice"
)

// Sentinel errors for collection operations.
var (
	// ErrVertexOrder indicates an insert whose vertex set is already
	// stored under a different order.
	ErrVertexOrder = errors.New("cells: conflicting vertex order")
	// ErrSimplexSize indicates a tuple longer than MaxVertices.
	ErrSimplexSize = errors.New("cells: simplex exceeds maximum vertex count")
	// ErrSealed indicates an insert into a sealed collection.
	ErrSealed = errors.New("cells: collection is sealed")
)

// Violation records two orderings of one underlying vertex set observed
// in the same collection. The stored entry is never overwritten; the
// caller decides whether the build as a whole is fatal.
type Violation struct {
	Existing Simplex
	Incoming Simplex
}

func (v Violation) String() string {
	return fmt.Sprintf("vertex order conflict: %s != %s", v.Existing, v.Incoming)
}

// Collection accumulates the distinct simplices of one identification
// regime, indexed by dimension, with order-conflict detection. Mutation
// is mutex-guarded; after Seal the collection is read-only.
type Collection struct {
	mu         sync.RWMutex
	byOrder    map[key]struct{}
	bySet      map[key]Simplex
	byDim      map[int][]Simplex
	violations []Violation
	sealed     bool
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		byOrder: make(map[key]struct{}),
		bySet:   make(map[key]Simplex),
		byDim:   make(map[int][]Simplex),
	}
}

// Insert adds the (already canonicalized) simplex.
//
// Returns (true, nil) when the simplex was new, (false, nil) when the
// identical ordered tuple was already present. When the vertex set is
// present under a different order the insert is rejected, the conflict
// is recorded, and the error wraps ErrVertexOrder.
//
// Insert does not recurse over faces; closure is the caller's procedure
// (the orbit builder inserts every face alongside its simplex).
// Complexity: O(len(s)·log len(s)) per call.
func (c *Collection) Insert(s Simplex) (bool, error) {
	if len(s) > MaxVertices {
		return false, fmt.Errorf("%d vertices: %w", len(s), ErrSimplexSize)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		return false, ErrSealed
	}
	sk := setKey(s)
	prev, ok := c.bySet[sk]
	if ok {
		if prev.Equal(s) {
			return false, nil
		}
		v := Violation{Existing: prev.Clone(), Incoming: s.Clone()}
		c.violations = append(c.violations, v)
		return false, fmt.Errorf("%s: %w", v, ErrVertexOrder)
	}
	stored := s.Clone()
	c.bySet[sk] = stored
	c.byOrder[tupleKey(stored)] = struct{}{}
	c.byDim[stored.Dim()] = append(c.byDim[stored.Dim()], stored)
	return true, nil
}

// Has reports whether the identical ordered tuple is stored.
func (c *Collection) Has(s Simplex) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byOrder[tupleKey(s)]
	return ok
}

// ByVertexSet returns the stored ordering of the given vertex set, if
// any — regardless of the order of the argument.
func (c *Collection) ByVertexSet(s Simplex) (Simplex, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stored, ok := c.bySet[setKey(s)]
	if !ok {
		return nil, false
	}
	return stored.Clone(), true
}

// Len returns the total number of stored simplices across all
// dimensions, the augmentation cell included.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bySet)
}

// Count returns the number of stored simplices of the given dimension.
func (c *Collection) Count(dim int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byDim[dim])
}

// Dim returns the largest dimension with at least one stored simplex,
// or -1 for an empty or augmentation-only collection.
func (c *Collection) Dim() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	top := -1
	for d := range c.byDim {
		if d > top {
			top = d
		}
	}
	return top
}

// ByDim returns the stored simplices of one dimension in lexicographic
// order. The slice is fresh; the simplices are shared and must not be
// mutated.
func (c *Collection) ByDim(dim int) []Simplex {
	c.mu.RLock()
	out := make([]Simplex, len(c.byDim[dim]))
	copy(out, c.byDim[dim])
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Vertices returns the distinct 0-cell points in lexicographic order.
func (c *Collection) Vertices() []lattice.Point {
	verts := c.ByDim(0)
	out := make([]lattice.Point, len(verts))
	for i, v := range verts {
		out[i] = v[0]
	}
	return out
}

// Violations returns the recorded order conflicts.
func (c *Collection) Violations() []Violation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Violation, len(c.violations))
	copy(out, c.violations)
	return out
}

// Seal freezes the collection; further inserts fail with ErrSealed.
// Sealing is performed by the builder once validation passes.
func (c *Collection) Seal() {
	c.mu.Lock()
	c.sealed = true
	c.mu.Unlock()
}

// Sealed reports whether the collection was sealed.
func (c *Collection) Sealed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sealed
}
