// Package cache implements the cache I/O layer: persistence of the
// collation, reading relations, reading support, and genealogical
// comparisons tables, backed by an embedded BadgerDB key-value store.
//
// Grounded on an embedded-store persistence manager keyed by content,
// opened/closed with explicit error wrapping and a fixed base directory;
// CBGM's tables are flattened onto Badger's flat keyspace with one key
// prefix per table and JSON-encoded values, with bitmap columns carried as
// their bitset.Set.MarshalBinary() bytes rather than re-parsed JSON arrays.
package cache

import "github.com/google/uuid"

// ReadingRelation is one row of the reading_relations table: a directed,
// weighted edge of a variation unit's local stemma.
type ReadingRelation struct {
	Prior     string
	Posterior string
	Weight    int64
}

// RunInfo identifies one persisted collation run.
type RunInfo struct {
	ID uuid.UUID
}

// comparisonRecord is the on-disk shape of one genealogical_comparisons
// row: every bitmap column carried as its compressed binary encoding.
type comparisonRecord struct {
	Primary       string
	Secondary     string
	Agreements    []byte
	Explained     []byte
	Extant        []byte
	Prior         []byte
	Posterior     []byte
	Norel         []byte
	Unclear       []byte
	Cost          float64
}

// unitMetaRecord is the on-disk shape of one variation_units row.
type unitMetaRecord struct {
	ID           string
	Label        string
	Connectivity int
	Order        int
}
