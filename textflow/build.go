package textflow

import (
	"fmt"

	"github.com/jjmccollum/open-cbgm-go/apparatus"
	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/stemma"
	"github.com/jjmccollum/open-cbgm-go/unit"
	"github.com/jjmccollum/open-cbgm-go/witness"
)

// rankedAncestor is one potential ancestor with its window rank attached.
type rankedAncestor struct {
	id   string
	rank int
}

// Build constructs the textual flow graph for variation unit u, over every
// witness declared in app, using the already-ranked potential-ancestor
// lists in witnesses (keyed by witness ID; every ID in app.Witnesses()
// must have an entry). con, if non-nil, overrides u's own connectivity
// bound.
func Build(app *apparatus.Apparatus, u *unit.VariationUnit, witnesses map[string]*witness.Witness, con *int) (*Graph, error) {
	idx, err := app.PassageIndex(u.ID())
	if err != nil {
		return nil, err
	}

	connectivity := u.Connectivity()
	if con != nil {
		connectivity = *con
	}

	ls := u.LocalStemma()
	g := &Graph{UnitID: u.ID()}

	for _, wID := range app.Witnesses() {
		reading, hasReading := u.Support(wID)
		g.Vertices = append(g.Vertices, Vertex{WitnessID: wID, Reading: reading, HasReading: hasReading})

		w, ok := witnesses[wID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWitness, wID)
		}
		ancestors := w.PotentialAncestors()
		if len(ancestors) == 0 {
			continue
		}

		windowed, err := window(w, ancestors, connectivity)
		if err != nil {
			return nil, fmt.Errorf("textflow: unit %q witness %q: %w", u.ID(), wID, err)
		}

		equalFound := false
		if hasReading {
			for _, ra := range windowed {
				if _, ok := u.Support(ra.id); !ok {
					continue
				}
				cmp, err := w.ComparisonFor(ra.id)
				if err != nil {
					return nil, err
				}
				if cmp.Agreements.Contains(uint32(idx)) {
					g.Edges = append(g.Edges, Edge{From: ra.id, To: wID, Rank: ra.rank, Kind: Equal, Strength: strengthOf(cmp)})
					equalFound = true
					break
				}
			}
		}
		if equalFound {
			continue
		}

		kind := Change
		if !hasReading {
			kind = Loss
		}
		var accepted []string
		for _, ra := range windowed {
			ancReading, ok := u.Support(ra.id)
			if !ok {
				continue
			}
			distinct := true
			for _, seen := range accepted {
				eq, err := readingsEquivalent(ls, ancReading, seen)
				if err != nil {
					return nil, fmt.Errorf("textflow: unit %q: %w", u.ID(), err)
				}
				if eq {
					distinct = false
					break
				}
			}
			if !distinct {
				continue
			}
			cmp, err := w.ComparisonFor(ra.id)
			if err != nil {
				return nil, err
			}
			g.Edges = append(g.Edges, Edge{From: ra.id, To: wID, Rank: ra.rank, Kind: kind, Strength: strengthOf(cmp)})
			accepted = append(accepted, ancReading)
		}
	}

	return g, nil
}

// window groups ancestors (already ranked best-first by package witness)
// into ranks of identical |agreements|, advancing rank only on strict
// decrease, and truncates once rank reaches con.
func window(w *witness.Witness, ancestors []string, con int) ([]rankedAncestor, error) {
	var out []rankedAncestor
	rank := 0
	prevAgreements := -1
	for i, anc := range ancestors {
		cmp, err := w.ComparisonFor(anc)
		if err != nil {
			return nil, err
		}
		agreements := cmp.Agreements.Cardinality()
		if i > 0 && agreements < prevAgreements {
			rank++
		}
		prevAgreements = agreements
		if rank >= con {
			break
		}
		out = append(out, rankedAncestor{id: anc, rank: rank})
	}
	return out, nil
}

// strengthOf computes (|posterior|-|prior|)/|extant| over a comparison, or
// 0 if the comparison has no extant overlap.
func strengthOf(cmp compare.Comparison) float64 {
	extant := cmp.Extant.Cardinality()
	if extant == 0 {
		return 0
	}
	return float64(cmp.Posterior.Cardinality()-cmp.Prior.Cardinality()) / float64(extant)
}

// readingsEquivalent reports whether r1 and r2 are trivially equivalent in
// ls: identical, or joined by a zero-weight path in both directions.
func readingsEquivalent(ls *stemma.LocalStemma, r1, r2 string) (bool, error) {
	if r1 == r2 {
		return true, nil
	}
	p12, ok12, err := ls.Path(r1, r2)
	if err != nil {
		return false, err
	}
	if !ok12 || p12.Weight != 0 {
		return false, nil
	}
	p21, ok21, err := ls.Path(r2, r1)
	if err != nil {
		return false, err
	}
	return ok21 && p21.Weight == 0, nil
}
