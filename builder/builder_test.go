package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torustri/builder"
	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/cubetri"
	"github.com/katalvlaran/torustri/lattice"
	"github.com/katalvlaran/torustri/symmetry"
)

// unitScenario is the smallest complete build: the (1,1,1,1) torus, no
// symmetry beyond translations, one cube triangulated under the
// lexicographic corner order.
func unitScenario(t *testing.T, opts ...builder.Option) (*builder.Builder, []cells.Simplex) {
	t.Helper()
	space, err := lattice.NewSpace([lattice.Dim]int{1, 1, 1, 1})
	require.NoError(t, err)
	group, err := symmetry.NewGroup(space, nil, symmetry.DefaultGroupOptions())
	require.NoError(t, err)
	b, err := builder.New(space, group, opts...)
	require.NoError(t, err)

	corners := make([]lattice.Point, 0, cubetri.NumCorners)
	for mask := 0; mask < cubetri.NumCorners; mask++ {
		var p lattice.Point
		for i := 0; i < lattice.Dim; i++ {
			if mask&(1<<(lattice.Dim-1-i)) != 0 {
				p[i] = 1
			}
		}
		corners = append(corners, p)
	}
	tri, err := cubetri.New(corners)
	require.NoError(t, err)
	return b, tri.Simplices()
}

func TestNew_Errors(t *testing.T) {
	space, err := lattice.NewSpace([lattice.Dim]int{1, 1, 1, 1})
	require.NoError(t, err)
	group, err := symmetry.NewGroup(space, nil, symmetry.DefaultGroupOptions())
	require.NoError(t, err)

	_, err = builder.New(nil, group)
	require.ErrorIs(t, err, builder.ErrNilSpace)
	_, err = builder.New(space, nil)
	require.ErrorIs(t, err, builder.ErrNilGroup)
}

func TestWithWorkers_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { builder.WithWorkers(0) })
	require.Panics(t, func() { builder.WithWorkers(-3) })
	require.NotPanics(t, func() { builder.WithWorkers(1) })
}

func TestBuild_UnitCube(t *testing.T) {
	b, seeds := unitScenario(t)
	require.Len(t, seeds, 24)
	require.NoError(t, b.AddAll(seeds))

	// Raw: the full staircase complex of one cube, augmentation cell
	// included. Boundary copies coincide with existing cells because the
	// staircase triangulation is translation invariant.
	raw := b.Raw()
	require.Equal(t, 300, raw.Len())
	for dim, want := range map[int]int{-1: 1, 0: 16, 1: 65, 2: 110, 3: 84, 4: 24} {
		require.Equal(t, want, raw.Count(dim), "raw dimension %d", dim)
	}

	// Torus and full quotient agree when the group is trivial: a single
	// vertex carrying the folded cells.
	for name, coll := range map[string]*cells.Collection{"torus": b.Torus(), "quotient": b.Quotient()} {
		require.Equal(t, 151, coll.Len(), name)
		for dim, want := range map[int]int{-1: 1, 0: 1, 1: 15, 2: 50, 3: 60, 4: 24} {
			require.Equal(t, want, coll.Count(dim), "%s dimension %d", name, dim)
		}
		require.Equal(t, []lattice.Point{{0, 0, 0, 0}}, coll.Vertices(), name)
	}

	report := b.Validate()
	require.True(t, report.OK(), report.String())
	require.Equal(t, "validation passed", report.String())
	require.True(t, b.Raw().Sealed())
	require.True(t, b.Torus().Sealed())
	require.True(t, b.Quotient().Sealed())

	require.ErrorIs(t, b.AddSimplexOrbit(seeds[0]), builder.ErrBuildSealed)
}

func TestCanonFor(t *testing.T) {
	b, _ := unitScenario(t)

	edge := cells.Simplex{{0, 0, 0, 1}, {1, 0, 0, 1}}
	require.Equal(t, edge, b.CanonFor(b.Raw())(edge), "raw regime is the identity")
	require.Equal(t, cells.Simplex{{0, 0, 0, 0}, {1, 0, 0, 0}},
		b.CanonFor(b.Torus())(edge), "torus regime folds to the fundamental region")
	require.Equal(t, cells.Simplex{{0, 0, 0, 0}, {1, 0, 0, 0}},
		b.CanonFor(b.Quotient())(edge), "trivial group: quotient regime equals the fold")

	require.Nil(t, b.CanonFor(cells.NewCollection()), "foreign collections have no regime")
}

func TestAddAll_WorkerPoolMatchesSequential(t *testing.T) {
	seq, seeds := unitScenario(t)
	require.NoError(t, seq.AddAll(seeds))

	par, _ := unitScenario(t, builder.WithWorkers(4))
	require.NoError(t, par.AddAll(seeds))

	for dim := -1; dim <= lattice.Dim; dim++ {
		require.Equal(t, seq.Raw().Count(dim), par.Raw().Count(dim), "raw dimension %d", dim)
		require.Equal(t, seq.Torus().Count(dim), par.Torus().Count(dim), "torus dimension %d", dim)
		require.Equal(t, seq.Quotient().Count(dim), par.Quotient().Count(dim), "quotient dimension %d", dim)
	}
	require.True(t, par.Validate().OK())
}

func TestAddAll_Idempotent(t *testing.T) {
	b, seeds := unitScenario(t)
	require.NoError(t, b.AddAll(seeds))
	before := b.Raw().Len()
	require.NoError(t, b.AddAll(seeds))
	require.Equal(t, before, b.Raw().Len())
	require.Empty(t, b.Raw().Violations())
}

func TestFacetsAt_BoundaryTetrahedra(t *testing.T) {
	b, seeds := unitScenario(t)
	require.NoError(t, b.AddAll(seeds))

	for axis := 0; axis < lattice.Dim; axis++ {
		inner := b.FacetsAt(axis, true)
		outer := b.FacetsAt(axis, false)
		// Each cube facet carries the staircase triangulation of the
		// 3-cube: six tetrahedra.
		require.Len(t, inner, 6, "axis %d inner", axis)
		require.Len(t, outer, 6, "axis %d outer", axis)
		for _, s := range inner {
			for _, v := range s {
				require.Zero(t, v[axis])
			}
		}
		for _, s := range outer {
			for _, v := range s {
				require.Equal(t, 1, v[axis])
			}
		}
	}
}
