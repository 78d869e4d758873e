package setcover

import "github.com/jjmccollum/open-cbgm-go/bitset"

// subSolution is an internal, pre-reassembly solution over the reduced
// candidate row set (i.e. before the unique rows fixed by Solve are
// reattached).
type subSolution struct {
	rows []Row
	cost float64
}

const (
	phaseAccept = iota
	phaseReject
	phaseDone
)

type bnbFrame struct {
	row int
	ph  int
}

// branchAndBound enumerates minimum-cost covers of target from rows using
// an explicit-stack depth-first search: each candidate row is tried
// ACCEPTed then REJECTed, with DONE restoring it to the undecided
// "remaining" set on backtrack. fixedBound, if non-nil, makes
// this an enumerate-up-to-bound search instead of a minimize-then-collect
// search. deadline, if non-nil, is checked once per step; on closure the
// search stops and returns its best solutions so far with truncated=true.
func branchAndBound(target bitset.Set, rows []Row, fixedBound *float64, deadline <-chan struct{}) (solutions []subSolution, truncated bool) {
	n := len(rows)
	if n == 0 {
		if target.IsEmpty() {
			return []subSolution{{rows: nil, cost: 0}}, false
		}
		return nil, false
	}

	var ub float64
	if fixedBound != nil {
		ub = *fixedBound
	} else {
		ub = seedUpperBound(target, rows)
	}

	accepted := make([]bool, n)
	remaining := make([]bool, n)
	for i := range remaining {
		remaining[i] = true
	}

	coverageOf := func(mask []bool) bitset.Set {
		cov := bitset.New()
		for i, on := range mask {
			if on {
				cov = cov.Or(rows[i].Covered)
			}
		}
		return cov
	}
	costOf := func(mask []bool) float64 {
		c := 0.0
		for i, on := range mask {
			if on {
				c += rows[i].Cost
			}
		}
		return c
	}
	firstRemaining := func() (int, bool) {
		for i, on := range remaining {
			if on {
				return i, true
			}
		}
		return -1, false
	}
	snapshot := func(mask []bool) []Row {
		out := make([]Row, 0, n)
		for i, on := range mask {
			if on {
				out = append(out, rows[i])
			}
		}
		return out
	}

	var stack []bnbFrame
	if r, ok := firstRemaining(); ok {
		stack = append(stack, bnbFrame{row: r, ph: phaseAccept})
	}

	for len(stack) > 0 {
		if deadline != nil {
			select {
			case <-deadline:
				truncated = true
				return dedupeByCost(solutions, fixedBound, ub), truncated
			default:
			}
		}

		top := &stack[len(stack)-1]
		switch top.ph {
		case phaseAccept:
			remaining[top.row] = false
			accepted[top.row] = true
			top.ph = phaseReject

			lb := costOf(accepted)
			if target.IsSubset(coverageOf(accepted)) {
				if fixedBound == nil && lb < ub {
					ub = lb
				}
				solutions = append(solutions, subSolution{rows: snapshot(accepted), cost: lb})
			} else if target.IsSubset(coverageOf(accepted).Or(coverageOf(remaining))) && lb <= ub {
				if r, ok := firstRemaining(); ok {
					stack = append(stack, bnbFrame{row: r, ph: phaseAccept})
				}
			}

		case phaseReject:
			accepted[top.row] = false
			top.ph = phaseDone

			lb := costOf(accepted)
			if target.IsSubset(coverageOf(accepted).Or(coverageOf(remaining))) && lb <= ub {
				if r, ok := firstRemaining(); ok {
					stack = append(stack, bnbFrame{row: r, ph: phaseAccept})
				}
			}

		case phaseDone:
			remaining[top.row] = true
			stack = stack[:len(stack)-1]
		}
	}

	return dedupeByCost(solutions, fixedBound, ub), false
}

// dedupeByCost filters recorded solutions to the ones Solve should keep:
// with no fixed bound, only those matching the final minimum cost; with a
// fixed bound, every solution at or under it.
func dedupeByCost(solutions []subSolution, fixedBound *float64, ub float64) []subSolution {
	const eps = 1e-9
	limit := ub
	exact := fixedBound == nil
	out := make([]subSolution, 0, len(solutions))
	for _, s := range solutions {
		if exact {
			if s.cost <= limit+eps && s.cost >= limit-eps {
				out = append(out, s)
			}
		} else if s.cost <= limit+eps {
			out = append(out, s)
		}
	}
	return out
}
