package globalstemma

import (
	"fmt"
	"sort"

	"github.com/jjmccollum/open-cbgm-go/setcover"
	"github.com/jjmccollum/open-cbgm-go/witness"
)

// Build aggregates witnesses' committed substemma ancestors into a global
// stemma. solutions supplies, per witness ID, the full optimal-solution set
// witness.Witness.Substemmata returned for it; it is used only to compute
// the Ambiguous flag on that witness's incoming edges and may be omitted
// (nil or missing entries) for witnesses with a single, unambiguous
// solution.
func Build(witnesses map[string]*witness.Witness, solutions map[string][]setcover.Solution) (*Graph, error) {
	ids := make([]string, 0, len(witnesses))
	for id := range witnesses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := &Graph{Vertices: make([]Vertex, len(ids))}
	for i, id := range ids {
		g.Vertices[i] = Vertex{WitnessID: id}
	}

	for _, id := range ids {
		w := witnesses[id]
		ancestors := w.SubstemmaAncestors()
		if len(ancestors) == 0 {
			continue
		}

		maxAgreements := 0
		agreementsOf := make(map[string]int, len(ancestors))
		for _, anc := range ancestors {
			cmp, err := w.ComparisonFor(anc)
			if err != nil {
				return nil, fmt.Errorf("globalstemma: witness %q: %w", id, err)
			}
			a := cmp.Agreements.Cardinality()
			agreementsOf[anc] = a
			if a > maxAgreements {
				maxAgreements = a
			}
		}

		ambiguousSet := ambiguousAncestors(solutions[id])

		sortedAncestors := append([]string{}, ancestors...)
		sort.Strings(sortedAncestors)
		for _, anc := range sortedAncestors {
			weight := 0.0
			if maxAgreements > 0 {
				weight = float64(agreementsOf[anc]) / float64(maxAgreements)
			}
			g.Edges = append(g.Edges, Edge{
				Ancestor:   anc,
				Descendant: id,
				Weight:     weight,
				Ambiguous:  ambiguousSet[anc],
			})
		}
	}

	return g, nil
}

// ambiguousAncestors returns the set of row IDs that appear in some but not
// all of sols. A single or empty solution list yields an empty set: there
// is no ambiguity to flag.
func ambiguousAncestors(sols []setcover.Solution) map[string]bool {
	out := map[string]bool{}
	if len(sols) < 2 {
		return out
	}
	counts := map[string]int{}
	for _, s := range sols {
		for _, r := range s.Rows {
			counts[r]++
		}
	}
	for id, c := range counts {
		if c != len(sols) {
			out[id] = true
		}
	}
	return out
}
