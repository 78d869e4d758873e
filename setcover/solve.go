package setcover

import (
	"sort"

	"github.com/jjmccollum/open-cbgm-go/bitset"
)

// Solve covers target with a minimum-cost subset of rows. With no
// WithUpperBound option, it returns every solution whose cost equals the
// discovered minimum; with one, it returns every solution with cost <=
// bound. Solutions are sorted by ascending cost, then ascending row count,
// then lexicographically by row IDs.
//
// Returns an *InfeasibleError (wrapping ErrInfeasible) if no subset of rows
// covers target; this is not a fatal condition and the caller may proceed
// with an empty solution list.
func Solve(target bitset.Set, rows []Row, opts ...Option) ([]Solution, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Cost != sorted[j].Cost {
			return sorted[i].Cost < sorted[j].Cost
		}
		return sorted[i].Agreements.Cardinality() > sorted[j].Agreements.Cardinality()
	})

	// Feasibility: union of all rows must cover target.
	allCov := bitset.New()
	for _, r := range sorted {
		allCov = allCov.Or(r.Covered)
	}
	if !target.IsSubset(allCov) {
		return nil, &InfeasibleError{Uncovered: target.AndNot(allCov)}
	}

	if target.IsEmpty() {
		return []Solution{{Rows: nil, Cost: 0, Agreements: 0}}, nil
	}

	// Unique-row preprocessing.
	bitmaps := make([]bitset.Set, len(sorted))
	for i, r := range sorted {
		bitmaps[i] = r.Covered
	}
	tree := buildOrTree(bitmaps, 0, len(sorted))

	uniqueIdx := make(map[int]struct{})
	for _, col := range target.ToArray() {
		if idx, ok := tree.uniqueRowFor(col); ok {
			uniqueIdx[idx] = struct{}{}
		}
	}

	fixedRows := make([]Row, 0, len(uniqueIdx))
	fixedCost := 0.0
	fixedAgreements := bitset.New()
	fixedCover := bitset.New()
	for idx := range uniqueIdx {
		r := sorted[idx]
		fixedRows = append(fixedRows, r)
		fixedCost += r.Cost
		fixedAgreements = fixedAgreements.Or(r.Agreements)
		fixedCover = fixedCover.Or(r.Covered)
	}
	sort.Slice(fixedRows, func(i, j int) bool { return fixedRows[i].ID < fixedRows[j].ID })

	reducedTarget := target.AndNot(fixedCover)
	if reducedTarget.IsEmpty() {
		ids := make([]string, len(fixedRows))
		for i, r := range fixedRows {
			ids[i] = r.ID
		}
		return []Solution{{Rows: ids, Cost: fixedCost, Agreements: fixedAgreements.Cardinality()}}, nil
	}

	candidates := make([]Row, 0, len(sorted)-len(uniqueIdx))
	for i, r := range sorted {
		if _, fixed := uniqueIdx[i]; !fixed {
			candidates = append(candidates, r)
		}
	}

	var fixedBound *float64
	if cfg.fixedUpperBound != nil {
		b := *cfg.fixedUpperBound - fixedCost
		fixedBound = &b
	}

	subSolutions, truncated := branchAndBound(reducedTarget, candidates, fixedBound, cfg.deadline)

	out := make([]Solution, 0, len(subSolutions))
	for _, s := range subSolutions {
		rows := append(append([]Row{}, fixedRows...), s.rows...)
		sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
		ids := make([]string, len(rows))
		agreements := bitset.New()
		for i, r := range rows {
			ids[i] = r.ID
			agreements = agreements.Or(r.Agreements)
		}
		out = append(out, Solution{
			Rows:       ids,
			Cost:       fixedCost + s.cost,
			Agreements: agreements.Cardinality(),
			Truncated:  truncated,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		if len(out[i].Rows) != len(out[j].Rows) {
			return len(out[i].Rows) < len(out[j].Rows)
		}
		for k := range out[i].Rows {
			if out[i].Rows[k] != out[j].Rows[k] {
				return out[i].Rows[k] < out[j].Rows[k]
			}
		}
		return false
	})

	return out, nil
}
