package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jjmccollum/open-cbgm-go/report"
)

var comparisonHeader = []string{"W2", "DIR", "NR", "PASS", "EQ", "%EQ", "W1>W2", "W1<W2", "NOREL", "UNCL", "EXPL", "COST"}

func comparisonFields(r report.ComparisonRow) []string {
	return []string{
		r.ID,
		dirSymbol(r.Dir),
		rankField(r.Rank),
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

// ComparisonsFixedWidth writes rows as a fixed-width table, preceded by a
// caption naming the primary witness, per compare_witnesses.cpp's
// to_fixed_width.
func ComparisonsFixedWidth(w io.Writer, primaryID string, rows []report.ComparisonRow) error {
	fmt.Fprintf(w, "Genealogical comparisons for W1 = %s:\n\n", primaryID)
	widths := []int{8, 4, 4, 8, 8, 12, 8, 8, 8, 8, 8, 12}
	writeFixedRow(w, comparisonHeader, widths)
	fmt.Fprintln(w)
	for _, r := range rows {
		writeFixedRow(w, comparisonFields(r), widths)
	}
	return nil
}

// ComparisonsCSV writes rows as CSV via encoding/csv.
func ComparisonsCSV(w io.Writer, rows []report.ComparisonRow) error {
	return writeDelimited(w, ',', comparisonHeader, rowsOf(rows, comparisonFields))
}

// ComparisonsTSV writes rows as tab-separated values.
func ComparisonsTSV(w io.Writer, rows []report.ComparisonRow) error {
	return writeDelimited(w, '\t', comparisonHeader, rowsOf(rows, comparisonFields))
}

// ComparisonsJSON writes rows as a JSON array.
func ComparisonsJSON(w io.Writer, rows []report.ComparisonRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func rowsOf[T any](rows []T, fields func(T) []string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = fields(r)
	}
	return out
}

func writeDelimited(w io.Writer, comma rune, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFixedRow(w io.Writer, fields []string, widths []int) {
	for i, f := range fields {
		width := 8
		if i < len(widths) {
			width = widths[i]
		}
		fmt.Fprintf(w, "%-*s", width, f)
	}
	fmt.Fprintln(w)
}
