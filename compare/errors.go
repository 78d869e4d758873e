package compare

import "errors"

// ErrUnknownWitness indicates Compare was asked to compare a witness ID the
// apparatus does not declare.
var ErrUnknownWitness = errors.New("compare: unknown witness")
