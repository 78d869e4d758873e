package textflow

import "errors"

// ErrUnknownWitness is returned when a witness listed in the apparatus has
// no corresponding populated witness.Witness in the map passed to Build.
var ErrUnknownWitness = errors.New("textflow: unknown witness")
