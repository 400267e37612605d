package cubetri_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/torustri/cells"
	"github.com/katalvlaran/torustri/cubetri"
	"github.com/katalvlaran/torustri/lattice"
)

// lexCorners enumerates offset+{0,1}^Dim in lexicographic order.
func lexCorners(offset lattice.Point) []lattice.Point {
	out := make([]lattice.Point, 0, cubetri.NumCorners)
	for mask := 0; mask < cubetri.NumCorners; mask++ {
		p := offset
		for i := 0; i < lattice.Dim; i++ {
			if mask&(1<<(lattice.Dim-1-i)) != 0 {
				p[i]++
			}
		}
		out = append(out, p)
	}
	return out
}

func TestNew_AcceptsAnyPermutation(t *testing.T) {
	corners := lexCorners(lattice.Point{})
	// Reverse the lex order: still a permutation of the corner set.
	reversed := make([]lattice.Point, len(corners))
	for i, c := range corners {
		reversed[len(corners)-1-i] = c
	}
	tri, err := cubetri.New(reversed)
	require.NoError(t, err)
	require.Equal(t, lattice.Point{}, tri.Offset())
	require.Equal(t, reversed, tri.Corners())
}

func TestNew_OffsetCube(t *testing.T) {
	offset := lattice.Point{3, -1, 0, 2}
	tri, err := cubetri.New(lexCorners(offset))
	require.NoError(t, err)
	require.Equal(t, offset, tri.Offset())
}

func TestNew_Errors(t *testing.T) {
	corners := lexCorners(lattice.Point{})

	_, err := cubetri.New(corners[:10])
	require.ErrorIs(t, err, cubetri.ErrCornerCount)

	dup := append([]lattice.Point(nil), corners...)
	dup[5] = dup[4]
	_, err = cubetri.New(dup)
	require.ErrorIs(t, err, cubetri.ErrDuplicateCorner)

	skew := append([]lattice.Point(nil), corners...)
	skew[15] = lattice.Point{0, 0, 0, 2}
	_, err = cubetri.New(skew)
	require.ErrorIs(t, err, cubetri.ErrNotCube)
}

func TestSimplices_StaircaseChains(t *testing.T) {
	offset := lattice.Point{1, 0, 2, 0}
	tri, err := cubetri.New(lexCorners(offset))
	require.NoError(t, err)

	simplices := tri.Simplices()
	require.Len(t, simplices, 24)

	opposite := offset
	for i := range opposite {
		opposite[i]++
	}
	seen := make(map[string]struct{}, len(simplices))
	for _, s := range simplices {
		require.Len(t, s, lattice.Dim+1)

		// Under the lex ordering the chain sorts from the cube offset to
		// the opposite corner, one unit step per axis.
		require.Equal(t, offset, s[0])
		require.Equal(t, opposite, s[lattice.Dim])
		for i := 1; i < len(s); i++ {
			diff := 0
			for axis := 0; axis < lattice.Dim; axis++ {
				d := s[i][axis] - s[i-1][axis]
				require.GreaterOrEqual(t, d, 0)
				diff += d
			}
			require.Equal(t, 1, diff, "consecutive chain corners differ by one unit step")
		}
		seen[s.String()] = struct{}{}
	}
	require.Len(t, seen, 24, "the staircase chains are pairwise distinct")
}

func TestSimplices_RespectCornerOrder(t *testing.T) {
	corners := lexCorners(lattice.Point{})
	// Swap the first two corners: chains containing both must list
	// (0,0,0,1) before (0,0,0,0).
	corners[0], corners[1] = corners[1], corners[0]
	tri, err := cubetri.New(corners)
	require.NoError(t, err)

	first := lattice.Point{0, 0, 0, 1}
	second := lattice.Point{}
	found := false
	for _, s := range tri.Simplices() {
		i, j := index(s, first), index(s, second)
		if i < 0 || j < 0 {
			continue
		}
		found = true
		require.Less(t, i, j, "prescribed order decides the vertex order inside each chain")
	}
	require.True(t, found)
}

func index(s cells.Simplex, p lattice.Point) int {
	for i, v := range s {
		if v == p {
			return i
		}
	}
	return -1
}
