package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/torustri/cells"
)

// Kind classifies a validation finding.
type Kind int

const (
	// KindOrderConflict: two occurrences of one vertex set disagree on
	// vertex order — the supplied corner orderings do not define a valid
	// Δ-complex for this identification regime.
	KindOrderConflict Kind = iota
	// KindMissingFace: a stored simplex lacks one of its faces — an
	// internal orbit-expansion bug, not a data problem.
	KindMissingFace
	// KindOrbitEscape: a group element maps a stored simplex outside the
	// collection — the collection is not closed under the group action.
	KindOrbitEscape
)

func (k Kind) String() string {
	switch k {
	case KindOrderConflict:
		return "order conflict"
	case KindMissingFace:
		return "missing face"
	case KindOrbitEscape:
		return "orbit escape"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is one validation finding, with enough detail to diagnose the
// ordering choice: the collection, the simplex, and the conflicting or
// missing counterpart.
type Entry struct {
	Kind       Kind
	Collection string
	Simplex    cells.Simplex
	Other      cells.Simplex
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s]: %s vs %s", e.Kind, e.Collection, e.Simplex, e.Other)
}

// Report is the structured outcome of a validation pass. The caller
// decides whether a failed report is fatal; the exporter refuses
// unsealed collections either way.
type Report struct {
	Entries []Entry
}

// OK reports whether the pass found no violations.
func (r *Report) OK() bool { return len(r.Entries) == 0 }

// String summarizes the report, listing at most the first ten findings.
func (r *Report) String() string {
	if r.OK() {
		return "validation passed"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed: %d findings", len(r.Entries))
	for i, e := range r.Entries {
		if i == 10 {
			sb.WriteString("\n  ...")
			break
		}
		sb.WriteString("\n  ")
		sb.WriteString(e.String())
	}
	return sb.String()
}

// Validate re-checks every collection exhaustively:
//
//   - order conflicts recorded during the build are replayed into the
//     report;
//   - closure: every face of every stored simplex, canonicalized under
//     the collection's own regime, must be present with the identical
//     order;
//   - group closure: every group element applied to every stored simplex
//     must collapse, under the collection's regime, to a stored
//     representative with the identical order.
//
// On a clean report the three collections and the session are sealed;
// afterwards they are immutable and safe for concurrent reads.
// Complexity: O(total cells · (Dim + |G|)).
func (b *Builder) Validate() *Report {
	report := &Report{}
	for _, c := range []struct {
		name  string
		coll  *cells.Collection
		canon func(cells.Simplex) cells.Simplex
	}{
		{"raw", b.raw, b.canonRaw},
		{"torus", b.torus, b.canonTorus},
		{"quotient", b.quotient, b.canonQuotient},
	} {
		for _, v := range c.coll.Violations() {
			report.Entries = append(report.Entries, Entry{
				Kind:       KindOrderConflict,
				Collection: c.name,
				Simplex:    v.Existing,
				Other:      v.Incoming,
			})
		}
		elements := b.group.Elements()
		for dim := 0; dim <= c.coll.Dim(); dim++ {
			for _, s := range c.coll.ByDim(dim) {
				for _, face := range s.Faces() {
					cf := c.canon(face)
					stored, ok := c.coll.ByVertexSet(cf)
					switch {
					case !ok:
						report.Entries = append(report.Entries, Entry{
							Kind: KindMissingFace, Collection: c.name, Simplex: s, Other: cf,
						})
					case !stored.Equal(cf):
						report.Entries = append(report.Entries, Entry{
							Kind: KindOrderConflict, Collection: c.name, Simplex: stored, Other: cf,
						})
					}
				}
				for _, el := range elements {
					img := cells.Simplex(b.space.Fold(el.ApplyAll(s)))
					ci := c.canon(img)
					stored, ok := c.coll.ByVertexSet(ci)
					switch {
					case !ok:
						report.Entries = append(report.Entries, Entry{
							Kind: KindOrbitEscape, Collection: c.name, Simplex: s, Other: ci,
						})
					case !stored.Equal(ci):
						report.Entries = append(report.Entries, Entry{
							Kind: KindOrderConflict, Collection: c.name, Simplex: stored, Other: ci,
						})
					}
				}
			}
		}
	}

	if report.OK() {
		b.mu.Lock()
		b.sealed = true
		b.mu.Unlock()
		b.raw.Seal()
		b.torus.Seal()
		b.quotient.Seal()
	}
	return report
}
