package witness

import "errors"

// Sentinel errors returned by package witness.
var (
	// ErrUnknownWitness indicates ComparisonFor was asked about a witness
	// this Witness has no comparison record for.
	ErrUnknownWitness = errors.New("witness: unknown witness")

	// ErrNotCompared indicates RankPotentialAncestors was called before
	// Compare.
	ErrNotCompared = errors.New("witness: compare phase not run")
)
