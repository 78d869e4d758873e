// Package witness implements the witness model: the holder of all of one
// primary witness's genealogical comparisons, its ranked potential-ancestor
// list, and its optimal-substemma queries.
//
// A Witness follows a two-phase lifecycle: Compare populates comparisons
// against every other witness (including itself), then
// RankPotentialAncestors derives the ordered potential ancestor list from
// those comparisons. Substemmata (backed by package setcover) and
// SetSubstemmaAncestors make up the third, caller-driven phase.
package witness

import (
	"fmt"
	"sort"

	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/setcover"
)

// Witness holds one primary witness's comparisons and derived rankings.
type Witness struct {
	id                  string
	comparisons         map[string]compare.Comparison
	potentialAncestors  []string
	substemmaAncestors  []string
}

// New returns an empty Witness for the given ID; call Compare to populate it.
func New(id string) *Witness {
	return &Witness{id: id, comparisons: make(map[string]compare.Comparison)}
}

// ID returns the witness's identifier.
func (w *Witness) ID() string { return w.id }

// Compare populates comparisons[other] for every witness in others
// (including w itself), using c. It is the lifecycle's first phase.
func (w *Witness) Compare(c *compare.Comparator, others []string) error {
	w.comparisons = make(map[string]compare.Comparison, len(others))
	for _, other := range others {
		cmp, err := c.Compare(w.id, other)
		if err != nil {
			return fmt.Errorf("witness %q: %w", w.id, err)
		}
		w.comparisons[other] = cmp
	}
	return nil
}

// SetComparison installs a precomputed comparison of w against other,
// bypassing Compare/Comparator, so a comparison obtained elsewhere (for
// example one read back from package cache) need not be recomputed.
func (w *Witness) SetComparison(other string, cmp compare.Comparison) {
	if w.comparisons == nil {
		w.comparisons = make(map[string]compare.Comparison)
	}
	w.comparisons[other] = cmp
}

// ComparisonFor returns the comparison of w against other.
func (w *Witness) ComparisonFor(other string) (compare.Comparison, error) {
	cmp, ok := w.comparisons[other]
	if !ok {
		return compare.Comparison{}, fmt.Errorf("%w: %q", ErrUnknownWitness, other)
	}
	return cmp, nil
}

// Extant returns w's comparison against itself (comparisons[w.id]); its
// Extant field is w's own extant passage set.
func (w *Witness) Extant() (compare.Comparison, error) {
	return w.ComparisonFor(w.id)
}

// RankPotentialAncestors derives the ordered potential-ancestor list: every
// other witness with |posterior| > |prior| relative to w, sorted by
// descending |agreements| (ties preserve the input others order, i.e. a
// stable sort), ranked by agreement count with ties advancing only on
// strict decrease (consumed later by package textflow).
func (w *Witness) RankPotentialAncestors(others []string) error {
	if len(w.comparisons) == 0 {
		return ErrNotCompared
	}
	type candidate struct {
		id         string
		agreements int
	}
	candidates := make([]candidate, 0, len(others))
	for _, other := range others {
		if other == w.id {
			continue
		}
		cmp, ok := w.comparisons[other]
		if !ok {
			return fmt.Errorf("witness %q: %w: %q", w.id, ErrUnknownWitness, other)
		}
		if cmp.Posterior.Cardinality() > cmp.Prior.Cardinality() {
			candidates = append(candidates, candidate{id: other, agreements: cmp.Agreements.Cardinality()})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].agreements > candidates[j].agreements
	})
	w.potentialAncestors = make([]string, len(candidates))
	for i, c := range candidates {
		w.potentialAncestors[i] = c.id
	}
	return nil
}

// PotentialAncestors returns the ranked potential-ancestor list, in rank
// order (best first).
func (w *Witness) PotentialAncestors() []string {
	out := make([]string, len(w.potentialAncestors))
	copy(out, w.potentialAncestors)
	return out
}

// Substemmata solves the weighted set-cover problem of explaining w's
// extant readings from its potential ancestors (package setcover). opts
// are forwarded to setcover.Solve.
func (w *Witness) Substemmata(opts ...setcover.Option) ([]setcover.Solution, error) {
	target, err := w.Extant()
	if err != nil {
		return nil, err
	}
	rows := make([]setcover.Row, 0, len(w.potentialAncestors))
	for _, anc := range w.potentialAncestors {
		cmp, err := w.ComparisonFor(anc)
		if err != nil {
			return nil, err
		}
		rows = append(rows, setcover.Row{
			ID:         anc,
			Covered:    cmp.Explained,
			Agreements: cmp.Agreements,
			Cost:       cmp.Cost,
		})
	}
	return setcover.Solve(target.Extant, rows, opts...)
}

// SetSubstemmaAncestors records the chosen substemma ancestor set (the
// lifecycle's third, caller-driven phase: the driver picks one optimal
// solution from Substemmata and commits it here).
func (w *Witness) SetSubstemmaAncestors(ancestors []string) {
	w.substemmaAncestors = make([]string, len(ancestors))
	copy(w.substemmaAncestors, ancestors)
}

// SubstemmaAncestors returns the committed substemma ancestor set.
func (w *Witness) SubstemmaAncestors() []string {
	out := make([]string, len(w.substemmaAncestors))
	copy(out, w.substemmaAncestors)
	return out
}
