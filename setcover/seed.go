package setcover

import (
	"math"
	"sort"

	"github.com/jjmccollum/open-cbgm-go/bitset"
)

// seedUpperBound computes the initial upper bound: the cheaper of a
// trivial single-row cover (if one exists) and a greedy, redundancy-pruned
// cover (which always exists, given target is coverable by rows).
func seedUpperBound(target bitset.Set, rows []Row) float64 {
	ub := greedyCost(target, rows)
	if trivial, ok := trivialCost(target, rows); ok && trivial < ub {
		ub = trivial
	}
	return ub
}

func trivialCost(target bitset.Set, rows []Row) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, r := range rows {
		if target.IsSubset(r.Covered) && r.Cost < best {
			best = r.Cost
			found = true
		}
	}
	return best, found
}

func greedyCost(target bitset.Set, rows []Row) float64 {
	remainingIdx := make([]int, len(rows))
	for i := range rows {
		remainingIdx[i] = i
	}

	selected := make([]int, 0)
	covered := bitset.New()
	for !target.IsSubset(covered) {
		best, bestDensity, bestPos := -1, math.Inf(1), -1
		for pos, i := range remainingIdx {
			newCov := rows[i].Covered.AndNot(covered).And(target)
			nc := newCov.Cardinality()
			if nc == 0 {
				continue
			}
			density := rows[i].Cost / float64(nc)
			if density < bestDensity {
				bestDensity, best, bestPos = density, i, pos
			}
		}
		if best == -1 {
			break // unreachable given the caller's feasibility guarantee
		}
		selected = append(selected, best)
		covered = covered.Or(rows[best].Covered)
		remainingIdx = append(remainingIdx[:bestPos], remainingIdx[bestPos+1:]...)
	}

	// Redundancy pruning: try removing rows in descending-cost order,
	// keeping the removal only if the remainder still covers target.
	sort.Slice(selected, func(a, b int) bool { return rows[selected[a]].Cost > rows[selected[b]].Cost })
	kept := append([]int{}, selected...)
	for _, idx := range selected {
		trial := removeValue(kept, idx)
		cov := bitset.New()
		for _, i := range trial {
			cov = cov.Or(rows[i].Covered)
		}
		if target.IsSubset(cov) {
			kept = trial
		}
	}

	total := 0.0
	for _, i := range kept {
		total += rows[i].Cost
	}
	return total
}

func removeValue(s []int, v int) []int {
	out := make([]int, 0, len(s))
	removed := false
	for _, x := range s {
		if !removed && x == v {
			removed = true
			continue
		}
		out = append(out, x)
	}
	return out
}
