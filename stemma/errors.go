package stemma

import "errors"

// Sentinel errors returned by package stemma.
var (
	// ErrUnknownReading indicates a query referenced a reading ID that is
	// not a vertex of the local stemma.
	ErrUnknownReading = errors.New("stemma: unknown reading")

	// ErrMalformedLocalStemma indicates a local stemma was constructed with
	// an edge referencing a reading absent from its vertex list, or with a
	// collapse map that chains back onto itself.
	ErrMalformedLocalStemma = errors.New("stemma: malformed local stemma")
)
