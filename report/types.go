// Package report implements the report projections: pure read-only views
// over the outputs of packages compare, witness, and setcover, producing
// four table shapes.
//
// Grounded on original_source/src/compare_witnesses.cpp,
// find_relatives.cpp, optimize_substemmata_table.cpp, and
// enumerate_relationships_table.cpp: each row struct here carries the same
// fields those files' witness_comparison structs print, renamed to Go
// field conventions; table construction mirrors their sort/rank logic
// rather than their SQLite- and iostream-bound plumbing.
package report

// ComparisonRow is one row of CompareWitnessesTable: a secondary witness's
// genealogical relationship to a fixed primary witness.
type ComparisonRow struct {
	ID         string
	Dir        int // -1 primary prior, +1 primary posterior, 0 neither
	Rank       int // potential-ancestor rank, or -1 if not a potential ancestor
	Pass       int // passages where the primary witness is extant
	Agreements int
	Percent    float64 // 100 * agreements / pass, or 0 if pass == 0
	Prior      int
	Posterior  int
	Norel      int
	Unclear    int
	Explained  int
	Cost       float64
	HasCost    bool // false when the secondary witness is not a potential ancestor
}

// RelativeRow extends ComparisonRow with the secondary witness's reading at
// the variation unit FindRelativesTable was asked about.
type RelativeRow struct {
	ComparisonRow
	Reading    string
	HasReading bool
}

// SubstemmaRow is one row of OptimizeSubstemmataTable: one optimal
// substemma solution.
type SubstemmaRow struct {
	Ancestors  []string
	Cost       float64
	Agreements int
}

// RelationshipGroup is one row of EnumerateRelationshipsTable: the passage
// IDs sharing a given relation type between a fixed witness pair.
type RelationshipGroup struct {
	Relation string // "AGREEMENT", "PRIOR", "POSTERIOR", "NOREL", "UNCLEAR"
	Passages []string
}
