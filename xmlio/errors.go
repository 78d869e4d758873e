package xmlio

import "errors"

// ErrNoWitnessList indicates the collation had no
// teiHeader/fileDesc/sourceDesc/listWit/witness declarations.
var ErrNoWitnessList = errors.New("xmlio: no listWit/witness elements found")

// ErrMissingID indicates an element (witness, reading, or unit) had none of
// the xml:id, id, or n attributes the ID fallback chain checks.
var ErrMissingID = errors.New("xmlio: element missing xml:id/id/n")
