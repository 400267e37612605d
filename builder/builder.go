package builder

import (
	"errors"
	"sync"

	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/lattice"
	"github.com/katalvlaran/torustri/symmetry"
)

// Sentinel errors for session construction and use.
var (
	// ErrNilSpace indicates a missing lattice space.
	ErrNilSpace = errors.New("builder: lattice space is required")
	// ErrNilGroup indicates a missing symmetry group.
	ErrNilGroup = errors.New("builder: symmetry group is required")
	// ErrBuildSealed indicates seeds added after successful validation.
	ErrBuildSealed = errors.New("builder: construction session is sealed")
)

// Builder is one construction session: three parallel collections grown
// by repeated AddSimplexOrbit calls, frozen by a successful Validate.
type Builder struct {
	space *lattice.Space
	group *symmetry.Group
	cfg   config

	raw      *cells.Collection
	torus    *cells.Collection
	quotient *cells.Collection

	mu     sync.Mutex
	sealed bool
}

// New starts a construction session over the given space and group.
func New(space *lattice.Space, group *symmetry.Group, opts ...Option) (*Builder, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if group == nil {
		return nil, ErrNilGroup
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{
		space:    space,
		group:    group,
		cfg:      cfg,
		raw:      cells.NewCollection(),
		torus:    cells.NewCollection(),
		quotient: cells.NewCollection(),
	}, nil
}

// Raw returns the fundamental-domain collection (no group
// identification; covering-box coordinates).
func (b *Builder) Raw() *cells.Collection { return b.raw }

// Torus returns the translation-quotient collection.
func (b *Builder) Torus() *cells.Collection { return b.torus }

// Quotient returns the full-quotient collection (translations and the
// symmetry group) — the actual target space.
func (b *Builder) Quotient() *cells.Collection { return b.quotient }

// CanonFor returns the canonicalization of the identification regime
// that owns the given collection (Raw, Torus or Quotient), or nil for a
// collection this builder does not own. The exporter needs it to
// resolve the faces of identified cells to their stored representatives.
func (b *Builder) CanonFor(coll *cells.Collection) cells.Canon {
	switch coll {
	case b.raw:
		return b.canonRaw
	case b.torus:
		return b.canonTorus
	case b.quotient:
		return b.canonQuotient
	}
	return nil
}

// AddSimplexOrbit expands one seed simplex into its orbit and registers
// every image and every face of every image into the three collections,
// each under its own canonical form. Insertion is idempotent; an image
// whose vertex set is already stored under a different order is recorded
// as a violation on the affected collection and skipped, never
// overwritten.
// Complexity: O(|orbit|·2^len(s)) simplex inserts per seed.
func (b *Builder) AddSimplexOrbit(s cells.Simplex) error {
	b.mu.Lock()
	sealed := b.sealed
	b.mu.Unlock()
	if sealed {
		return ErrBuildSealed
	}
	for _, img := range b.group.Orbit(s) {
		simp := cells.Simplex(img)
		// The raw box needs the boundary copies of cells lying in a
		// zero-hyperplane: on the torus they are the same cell as their
		// far-face translate, and both raw copies must carry one order.
		for _, copyS := range b.torusImages(simp) {
			b.insert(b.raw, b.canonRaw, copyS)
		}
		b.insert(b.torus, b.canonTorus, simp)
		b.insert(b.quotient, b.canonQuotient, simp)
	}
	return nil
}

// AddAll processes every seed via AddSimplexOrbit, across the configured
// number of workers. Orbit insertion is idempotent and commutative with
// respect to processing order, so the result is independent of the
// worker count; violations are aggregated on the collections.
func (b *Builder) AddAll(seeds []cells.Simplex) error {
	if b.cfg.workers == 1 {
		for _, s := range seeds {
			if err := b.AddSimplexOrbit(s); err != nil {
				return err
			}
		}
		return nil
	}

	in := make(chan cells.Simplex)
	errCh := make(chan error, b.cfg.workers)
	var wg sync.WaitGroup
	for w := 0; w < b.cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range in {
				if err := b.AddSimplexOrbit(s); err != nil {
					// Keep draining so the feeder never blocks.
					select {
					case errCh <- err:
					default:
					}
				}
			}
		}()
	}
	for _, s := range seeds {
		in <- s
	}
	close(in)
	wg.Wait()
	close(errCh)
	return <-errCh
}

// insert registers the canonical form of s and recurses over its faces,
// so every inserted simplex is face-closed by construction. Conflicting
// orders are recorded by the collection; recursion stops there so the
// conflict is reported exactly once per recurrence.
func (b *Builder) insert(coll *cells.Collection, canon func(cells.Simplex) cells.Simplex, s cells.Simplex) {
	c := canon(s)
	added, err := coll.Insert(c)
	if err != nil || !added {
		return
	}
	for _, face := range c.Faces() {
		b.insert(coll, canon, face)
	}
}

// canonRaw is the identity: raw cells are stored as they appear in the
// covering box.
func (b *Builder) canonRaw(s cells.Simplex) cells.Simplex { return s }

// canonTorus folds the tuple to its fundamental-region representative,
// the canonical member of its translation class.
func (b *Builder) canonTorus(s cells.Simplex) cells.Simplex {
	return cells.Simplex(b.space.Fold(s))
}

// canonQuotient selects the lexicographically least folded orbit member,
// the canonical representative of the full class.
func (b *Builder) canonQuotient(s cells.Simplex) cells.Simplex {
	orbit := b.group.Orbit(s)
	return cells.Simplex(orbit[0])
}

// torusImages returns s together with its period-translates along every
// axis on which the whole simplex lies in the zero hyperplane,
// combinations across axes included.
func (b *Builder) torusImages(s cells.Simplex) []cells.Simplex {
	images := []cells.Simplex{s}
	if len(s) == 0 {
		return images
	}
	for axis := 0; axis < lattice.Dim; axis++ {
		flat := true
		for _, v := range s {
			if v[axis] != 0 {
				flat = false
				break
			}
		}
		if !flat {
			continue
		}
		p := b.space.Period(axis)
		for _, img := range images[:len(images):len(images)] {
			shifted := make(cells.Simplex, len(img))
			for i, v := range img {
				shifted[i] = v.Translate(axis, p)
			}
			images = append(images, shifted)
		}
	}
	return images
}

// FacetsAt returns the (Dim-1)-dimensional raw cells lying entirely in
// the boundary hyperplane of the covering box on the given axis: the
// zero face when inner is true, the period face otherwise.
func (b *Builder) FacetsAt(axis int, inner bool) []cells.Simplex {
	want := 0
	if !inner {
		want = b.space.Period(axis)
	}
	var out []cells.Simplex
	for _, s := range b.raw.ByDim(lattice.Dim - 1) {
		all := true
		for _, v := range s {
			if v[axis] != want {
				all = false
				break
			}
		}
		if all {
			out = append(out, s)
		}
	}
	return out
}
