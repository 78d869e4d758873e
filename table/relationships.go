package table

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jjmccollum/open-cbgm-go/report"
)

// RelationshipsText writes groups as a captioned section list (one
// relation name followed by its passage IDs, one per line), per
// enumerate_relationships_table.cpp's to_csv/to_tsv (both of which are
// section listings rather than column tables; a single writer covers
// both since no field ever needs escaping between relation name and
// passage ID).
func RelationshipsText(w io.Writer, primaryID, secondaryID string, groups []report.RelationshipGroup) error {
	fmt.Fprintf(w, "Genealogical relationships between %s and %s\n", primaryID, secondaryID)
	for _, g := range groups {
		fmt.Fprintln(w, g.Relation)
		for _, p := range g.Passages {
			fmt.Fprintln(w, p)
		}
	}
	return nil
}

// RelationshipsJSON writes groups as a JSON array.
func RelationshipsJSON(w io.Writer, groups []report.RelationshipGroup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}
