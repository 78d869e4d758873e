package apparatus

import "errors"

// Sentinel errors returned by package apparatus.
var (
	// ErrUnknownWitness indicates a query referenced a witness ID absent
	// from the apparatus's declared witness list.
	ErrUnknownWitness = errors.New("apparatus: unknown witness")

	// ErrUnknownPassage indicates a query referenced a variation-unit ID
	// absent from the apparatus.
	ErrUnknownPassage = errors.New("apparatus: unknown passage")

	// ErrDuplicateUnit indicates two variation units in the input shared an ID.
	ErrDuplicateUnit = errors.New("apparatus: duplicate variation unit id")

	// ErrDuplicateWitness indicates the declared witness list contained a
	// repeated ID.
	ErrDuplicateWitness = errors.New("apparatus: duplicate witness id")
)
