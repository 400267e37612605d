package lattice

import (
	"errors"
	"fmt"
)

// ErrBadPeriod indicates a period vector entry that is zero or negative.
var ErrBadPeriod = errors.New("lattice: period entries must be positive")

// Space is the coordinate lattice together with its period vector.
// It is immutable configuration, fixed for a construction run.
type Space struct {
	period [Dim]int
}

// NewSpace validates the period vector and returns the Space.
// Returns ErrBadPeriod if any entry is not positive.
// Complexity: O(Dim).
func NewSpace(period [Dim]int) (*Space, error) {
	for i, p := range period {
		if p <= 0 {
			return nil, fmt.Errorf("axis %d: period %d: %w", i, p, ErrBadPeriod)
		}
	}
	return &Space{period: period}, nil
}

// Period returns the identification length of the given axis.
func (s *Space) Period(axis int) int { return s.period[axis] }

// Periods returns a copy of the period vector.
func (s *Space) Periods() [Dim]int { return s.period }

// Reduce returns the canonical representative of p modulo the period
// vector: each coordinate folded into [0, period_i), floor semantics for
// negative coordinates.
// Complexity: O(Dim).
func (s *Space) Reduce(p Point) Point {
	for i := 0; i < Dim; i++ {
		p[i] -= floorDiv(p[i], s.period[i]) * s.period[i]
	}
	return p
}

// Fold translates the tuple as a whole so that, on every axis, the
// minimum coordinate lies in [0, period_i). All points receive the same
// per-axis shift, so the shape of the tuple is preserved — Fold selects
// the fundamental-region representative of the tuple's translation class.
// The input slice is not modified; the result is a fresh slice.
// Complexity: O(Dim·len(pts)).
func (s *Space) Fold(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	if len(out) == 0 {
		return out
	}
	for i := 0; i < Dim; i++ {
		min := out[0][i]
		for _, v := range out[1:] {
			if v[i] < min {
				min = v[i]
			}
		}
		if d := floorDiv(min, s.period[i]); d != 0 {
			for j := range out {
				out[j][i] -= d * s.period[i]
			}
		}
	}
	return out
}
