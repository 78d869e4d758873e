package setcover_test

import (
	"testing"

	"github.com/jjmccollum/open-cbgm-go/bitset"
	"github.com/jjmccollum/open-cbgm-go/setcover"
	"github.com/stretchr/testify/require"
)

// row is a small constructor helper; Agreements mirrors Covered unless a
// test needs them to diverge.
func row(id string, covered []uint32, cost float64) setcover.Row {
	return setcover.Row{
		ID:         id,
		Covered:    bitset.Of(covered...),
		Agreements: bitset.Of(covered...),
		Cost:       cost,
	}
}

// TestOptimalCoverPicksCheaperWholeRow checks a case where:
// target {0,1,2,3}; row A covers {0,2,3} at cost 3, row B covers {0,3} at
// cost 2, row C covers {0,1,2,3} at cost 4. A and B together cannot cover
// column 1 (neither has it alone, and together they still miss it: A∪B =
// {0,2,3}), so C alone, despite its higher per-row cost, is the only
// feasible single cover and is cheaper than any combination that reaches
// column 1 by other means in this row set.
func TestOptimalCoverPicksCheaperWholeRow(t *testing.T) {
	target := bitset.Of(0, 1, 2, 3)
	rows := []setcover.Row{
		row("A", []uint32{0, 2, 3}, 3),
		row("B", []uint32{0, 3}, 2),
		row("C", []uint32{0, 1, 2, 3}, 4),
	}

	sols, err := setcover.Solve(target, rows)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, []string{"C"}, sols[0].Rows)
	require.Equal(t, 4.0, sols[0].Cost)
}

// TestUniqueRowPreprocessingFixesSoleCoverer checks that row D, the only
// row covering column 1, is fixed immediately by unique-row
// preprocessing; the remaining target {0} is then covered by the cheaper
// of A (cost 3) and B (cost 2), giving {D,B} at cost 3 overall rather than
// exploring combinations involving A.
func TestUniqueRowPreprocessingFixesSoleCoverer(t *testing.T) {
	target := bitset.Of(0, 1, 2, 3)
	rows := []setcover.Row{
		row("A", []uint32{0, 2, 3}, 3),
		row("B", []uint32{0, 3}, 2),
		row("D", []uint32{1, 2, 3}, 1),
	}

	sols, err := setcover.Solve(target, rows)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, []string{"B", "D"}, sols[0].Rows)
	require.Equal(t, 3.0, sols[0].Cost)
}

func TestInfeasibleTargetReturnsInfeasibleError(t *testing.T) {
	target := bitset.Of(0, 1, 2)
	rows := []setcover.Row{
		row("A", []uint32{0, 1}, 1),
	}

	sols, err := setcover.Solve(target, rows)
	require.Nil(t, sols)
	require.Error(t, err)
	require.ErrorIs(t, err, setcover.ErrInfeasible)

	var infErr *setcover.InfeasibleError
	require.ErrorAs(t, err, &infErr)
	require.Equal(t, 1, infErr.Uncovered.Cardinality())
	require.True(t, infErr.Uncovered.Contains(2))
}

func TestEmptyTargetYieldsEmptyFreeSolution(t *testing.T) {
	rows := []setcover.Row{row("A", []uint32{0, 1}, 5)}
	sols, err := setcover.Solve(bitset.New(), rows)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Empty(t, sols[0].Rows)
	require.Equal(t, 0.0, sols[0].Cost)
}

// TestMultipleOptimalSolutionsAllReturned checks that two distinct rows with
// identical coverage and equal cost, each a single-row cover of the target,
// are both reported, sorted
// by row ID, when no upper bound option narrows the search.
func TestMultipleOptimalSolutionsAllReturned(t *testing.T) {
	target := bitset.Of(0, 1)
	rows := []setcover.Row{
		row("A", []uint32{0, 1}, 2),
		row("B", []uint32{0, 1}, 2),
	}

	sols, err := setcover.Solve(target, rows)
	require.NoError(t, err)
	require.Len(t, sols, 2)
	require.Equal(t, []string{"A"}, sols[0].Rows)
	require.Equal(t, []string{"B"}, sols[1].Rows)
}

// TestWithUpperBoundEnumeratesUpToBound checks the enumerate-vs-optimize
// mode switch: with an explicit bound, every feasible cover at or under it
// is returned, not just the minimum.
func TestWithUpperBoundEnumeratesUpToBound(t *testing.T) {
	target := bitset.Of(0, 1, 2, 3)
	rows := []setcover.Row{
		row("A", []uint32{0, 2, 3}, 3),
		row("B", []uint32{0, 3}, 2),
		row("C", []uint32{0, 1, 2, 3}, 4),
	}

	sols, err := setcover.Solve(target, rows, setcover.WithUpperBound(4))
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, []string{"C"}, sols[0].Rows)
}

// TestDeadlineTruncatesSearch uses overlapping rows where every target
// column is covered by more than one row, so none is fixed by unique-row
// preprocessing and the search actually reaches branchAndBound before
// observing the closed deadline channel.
func TestDeadlineTruncatesSearch(t *testing.T) {
	target := bitset.Of(0, 1, 2, 3)
	rows := []setcover.Row{
		row("A", []uint32{0, 1, 2}, 3),
		row("B", []uint32{1, 2, 3}, 2),
		row("C", []uint32{0, 1, 2, 3}, 4),
	}

	done := make(chan struct{})
	close(done)

	sols, err := setcover.Solve(target, rows, setcover.WithDeadline(done))
	require.NoError(t, err)
	for _, s := range sols {
		require.True(t, s.Truncated)
	}
}
