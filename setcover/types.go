// Package setcover implements the weighted set-cover solver: cover a
// target bitmap by a minimum-cost subset of candidate rows, via
// unique-coverage preprocessing, trivial/greedy upper-bound seeding, and
// branch-and-bound enumeration of all optimal solutions.
//
// Grounded directly on original_source/src/set_cover_solver.cpp: the
// unique-row reduction (a binary tree of bitwise-ORs over row bitmaps), the
// trivial and greedy seed solutions, and the explicit-stack branch-and-bound
// search with ACCEPT/REJECT/DONE node phases are all ports of that file's
// algorithm onto this package's bitset.Set representation.
package setcover

import (
	"fmt"

	"github.com/jjmccollum/open-cbgm-go/bitset"
)

// Row is one candidate set-cover row: the columns it covers, the subset of
// those that are "agreements" (for reporting), and its cost.
type Row struct {
	ID         string
	Covered    bitset.Set
	Agreements bitset.Set
	Cost       float64
}

// Solution is one feasible cover: the row IDs used, their total cost, and
// the total agreement count they carry. Truncated is set when a supplied
// deadline expired before the search completed; the solution is then the
// best found so far, not necessarily optimal.
type Solution struct {
	Rows       []string
	Cost       float64
	Agreements int
	Truncated  bool
}

// options configures a Solve call.
type options struct {
	fixedUpperBound *float64
	deadline        <-chan struct{}
}

// Option configures Solve.
type Option func(*options)

// WithUpperBound supplies a fixed cost bound: Solve enumerates all
// solutions with cost <= bound instead of seeding and improving its own
// bound.
func WithUpperBound(bound float64) Option {
	return func(o *options) { o.fixedUpperBound = &bound }
}

// WithDeadline supplies a channel that is closed when the solver's deadline
// expires (e.g. from context.Context.Done()). On expiry the solver returns
// the best solution(s) found so far with Truncated set.
func WithDeadline(done <-chan struct{}) Option {
	return func(o *options) { o.deadline = done }
}

// InfeasibleError reports that no subset of the supplied rows covers the
// target: a non-fatal condition the caller is expected to handle, not a
// process abort.
type InfeasibleError struct {
	// Uncovered is the subset of the original target no row covers at all.
	Uncovered bitset.Set
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("setcover: infeasible: %d column(s) uncovered by any row", e.Uncovered.Cardinality())
}

func (e *InfeasibleError) Unwrap() error { return ErrInfeasible }
