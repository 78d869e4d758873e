// Package globalstemma implements the global stemma builder: aggregates
// every witness's committed substemma ancestors into a single weighted DAG.
//
// Grounded on original_source/src/global_stemma.cpp: one vertex per
// witness, one edge per (ancestor, witness) pair with weight
// |agreements_with(ancestor)| / max_agreements over that witness's
// ancestors. The Ambiguous flag (witness has multiple optimal substemmata
// and this ancestor does not appear in all of them) is absent from the
// original and computed here from the full optimal-solution set package
// witness.Substemmata returns rather than only the single solution
// committed via SetSubstemmaAncestors.
package globalstemma

// Vertex is one witness's node in the global stemma.
type Vertex struct {
	WitnessID string
}

// Edge is one ancestor->descendant edge, weighted by relative agreement
// strength.
type Edge struct {
	Ancestor, Descendant string
	Weight               float64
	Ambiguous            bool
}

// Graph is the global stemma: one vertex per witness with at least one
// substemma ancestor or none (sources, e.g. the Ausgangstext, still get a
// vertex; witnesses with empty substemmata contribute no edges).
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
}
