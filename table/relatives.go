package table

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jjmccollum/open-cbgm-go/report"
)

var relativesHeader = []string{"W2", "DIR", "NR", "RDG", "PASS", "EQ", "%EQ", "W1>W2", "W1<W2", "NOREL", "UNCL", "EXPL", "COST"}

func relativeFields(r report.RelativeRow) []string {
	rdg := r.Reading
	if !r.HasReading {
		rdg = "-"
	}
	return []string{
		r.ID,
		dirSymbol(r.Dir),
		rankField(r.Rank),
		rdg,
		fmt.Sprint(r.Pass),
		fmt.Sprint(r.Agreements),
		percentField(r.Percent),
		fmt.Sprint(r.Prior),
		fmt.Sprint(r.Posterior),
		fmt.Sprint(r.Norel),
		fmt.Sprint(r.Unclear),
		fmt.Sprint(r.Explained),
		costField(r.Cost, r.HasCost),
	}
}

// RelativesFixedWidth writes rows as a fixed-width table, per
// find_relatives_table.cpp's to_fixed_width.
func RelativesFixedWidth(w io.Writer, primaryID string, primaryExtant int, rows []report.RelativeRow) error {
	fmt.Fprintf(w, "Genealogical comparisons for W1 = %s (%d extant passages):\n\n", primaryID, primaryExtant)
	widths := []int{8, 4, 8, 8, 8, 8, 12, 8, 8, 8, 8, 8, 12}
	writeFixedRow(w, relativesHeader, widths)
	fmt.Fprintln(w)
	for _, r := range rows {
		writeFixedRow(w, relativeFields(r), widths)
	}
	return nil
}

// RelativesCSV writes rows as CSV.
func RelativesCSV(w io.Writer, rows []report.RelativeRow) error {
	return writeDelimited(w, ',', relativesHeader, rowsOf(rows, relativeFields))
}

// RelativesTSV writes rows as TSV.
func RelativesTSV(w io.Writer, rows []report.RelativeRow) error {
	return writeDelimited(w, '\t', relativesHeader, rowsOf(rows, relativeFields))
}

// RelativesJSON writes rows as a JSON array.
func RelativesJSON(w io.Writer, rows []report.RelativeRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
