package report

import (
	"fmt"
	"sort"

	"github.com/jjmccollum/open-cbgm-go/apparatus"
	"github.com/jjmccollum/open-cbgm-go/bitset"
	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/setcover"
	"github.com/jjmccollum/open-cbgm-go/unit"
	"github.com/jjmccollum/open-cbgm-go/witness"
)

// rankPotentialAncestors groups a witness's already agreement-sorted
// potential-ancestor list into ranks, advancing only on a strict decrease
// of |agreements|.
func rankPotentialAncestors(primary *witness.Witness) (map[string]int, error) {
	ancestors := primary.PotentialAncestors()
	ranks := make(map[string]int, len(ancestors))
	rank := 0
	prevAgreements := -1
	for i, anc := range ancestors {
		cmp, err := primary.ComparisonFor(anc)
		if err != nil {
			return nil, err
		}
		agreements := cmp.Agreements.Cardinality()
		if i > 0 && agreements < prevAgreements {
			rank++
		}
		prevAgreements = agreements
		ranks[anc] = rank
	}
	return ranks, nil
}

// buildComparisonRows computes one ComparisonRow per secondary witness ID,
// in the given order.
func buildComparisonRows(primary *witness.Witness, secondaries []string) ([]ComparisonRow, error) {
	self, err := primary.Extant()
	if err != nil {
		return nil, err
	}
	pass := self.Extant.Cardinality()

	ranks, err := rankPotentialAncestors(primary)
	if err != nil {
		return nil, err
	}

	rows := make([]ComparisonRow, 0, len(secondaries))
	for _, id := range secondaries {
		cmp, err := primary.ComparisonFor(id)
		if err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}

		posterior := cmp.Posterior.Cardinality()
		prior := cmp.Prior.Cardinality()
		dir := 0
		switch {
		case posterior > prior:
			dir = 1
		case prior > posterior:
			dir = -1
		}

		rank, isAncestor := ranks[id]
		row := ComparisonRow{
			ID:         id,
			Dir:        dir,
			Pass:       pass,
			Agreements: cmp.Agreements.Cardinality(),
			Prior:      prior,
			Posterior:  posterior,
			Norel:      cmp.Norel.Cardinality(),
			Unclear:    cmp.Unclear.Cardinality(),
			Explained:  cmp.Explained.Cardinality(),
			Cost:       cmp.Cost,
			HasCost:    isAncestor,
		}
		if pass > 0 {
			row.Percent = 100 * float64(row.Agreements) / float64(pass)
		}
		if isAncestor {
			row.Rank = rank
		} else {
			row.Rank = -1
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CompareWitnessesTable computes compare_witnesses_table: one row per
// secondary witness ID, in the order given.
func CompareWitnessesTable(primary *witness.Witness, secondaries []string) ([]ComparisonRow, error) {
	return buildComparisonRows(primary, secondaries)
}

// FindRelativesTable computes find_relatives_table: a
// compare_witnesses_table extended with each secondary witness's reading
// at u, optionally filtered to only those attesting filterReading (an
// empty filterReading disables filtering).
func FindRelativesTable(primary *witness.Witness, u *unit.VariationUnit, secondaries []string, filterReading string) ([]RelativeRow, error) {
	base, err := buildComparisonRows(primary, secondaries)
	if err != nil {
		return nil, err
	}

	rows := make([]RelativeRow, 0, len(base))
	for _, row := range base {
		reading, hasReading := u.Support(row.ID)
		if filterReading != "" && reading != filterReading {
			continue
		}
		rows = append(rows, RelativeRow{ComparisonRow: row, Reading: reading, HasReading: hasReading})
	}
	return rows, nil
}

// OptimizeSubstemmataTable computes optimize_substemmata_table: one row
// per optimal substemma solution.
func OptimizeSubstemmataTable(solutions []setcover.Solution) []SubstemmaRow {
	rows := make([]SubstemmaRow, len(solutions))
	for i, s := range solutions {
		ancestors := make([]string, len(s.Rows))
		copy(ancestors, s.Rows)
		rows[i] = SubstemmaRow{Ancestors: ancestors, Cost: s.Cost, Agreements: s.Agreements}
	}
	return rows
}

// EnumerateRelationshipsTable computes enumerate_relationships_table: the
// variation unit IDs sharing each relation type between cmp's primary and
// secondary witness, grouped and ordered AGREEMENT, PRIOR, POSTERIOR,
// NOREL, UNCLEAR.
func EnumerateRelationshipsTable(cmp compare.Comparison, app *apparatus.Apparatus) []RelationshipGroup {
	units := app.Units()
	idsFor := func(bm bitset.Set) []string {
		indices := bm.ToArray()
		out := make([]string, len(indices))
		for i, idx := range indices {
			out[i] = units[idx].ID()
		}
		return out
	}

	return []RelationshipGroup{
		{Relation: "AGREEMENT", Passages: idsFor(cmp.Agreements)},
		{Relation: "PRIOR", Passages: idsFor(cmp.Prior)},
		{Relation: "POSTERIOR", Passages: idsFor(cmp.Posterior)},
		{Relation: "NOREL", Passages: idsFor(cmp.Norel)},
		{Relation: "UNCLEAR", Passages: idsFor(cmp.Unclear)},
	}
}

// SortByAgreementsDesc orders ids by descending agreement count against
// primary, breaking ties by ID for determinism: the natural row order for
// CompareWitnessesTable / FindRelativesTable. Package witness ranks
// potential ancestors by the same count but keeps input order on ties, so
// tied IDs can appear in a different order there.
func SortByAgreementsDesc(primary *witness.Witness, ids []string) ([]string, error) {
	type scored struct {
		id    string
		count int
	}
	scoredIDs := make([]scored, 0, len(ids))
	for _, id := range ids {
		cmp, err := primary.ComparisonFor(id)
		if err != nil {
			return nil, err
		}
		scoredIDs = append(scoredIDs, scored{id: id, count: cmp.Agreements.Cardinality()})
	}
	sort.SliceStable(scoredIDs, func(i, j int) bool {
		if scoredIDs[i].count != scoredIDs[j].count {
			return scoredIDs[i].count > scoredIDs[j].count
		}
		return scoredIDs[i].id < scoredIDs[j].id
	})
	out := make([]string, len(scoredIDs))
	for i, s := range scoredIDs {
		out[i] = s.id
	}
	return out, nil
}
