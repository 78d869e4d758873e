package unit

import "errors"

// Sentinel errors returned by package unit.
var (
	// ErrUnknownWitness names the unknown-witness condition. Support does
	// not return it: a witness with no attestation at the unit is reported
	// through Support's ok result.
	ErrUnknownWitness = errors.New("unit: unknown witness")

	// ErrDuplicateReading indicates two readings in the vertex list shared
	// an ID before collapsing was applied.
	ErrDuplicateReading = errors.New("unit: duplicate reading id")
)
