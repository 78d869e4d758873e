package table

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jjmccollum/open-cbgm-go/report"
)

var substemmataHeader = []string{"ANCESTORS", "COST", "AGREE"}

func substemmaFields(r report.SubstemmaRow) []string {
	return []string{
		strings.Join(r.Ancestors, ", "),
		strconv.FormatFloat(r.Cost, 'f', 3, 64),
		fmt.Sprint(r.Agreements),
	}
}

// SubstemmataFixedWidth writes rows as a fixed-width table, per
// optimize_substemmata_table.cpp's to_fixed_width.
func SubstemmataFixedWidth(w io.Writer, primaryID string, rows []report.SubstemmaRow) error {
	fmt.Fprintf(w, "Optimal substemmata for witness W1 = %s:\n\n", primaryID)
	widths := []int{48, 8, 8}
	writeFixedRow(w, substemmataHeader, widths)
	fmt.Fprintln(w)
	for _, r := range rows {
		writeFixedRow(w, substemmaFields(r), widths)
	}
	return nil
}

// SubstemmataCSV writes rows as CSV; the ancestors column is quoted since
// it may itself contain commas.
func SubstemmataCSV(w io.Writer, rows []report.SubstemmaRow) error {
	return writeDelimited(w, ',', substemmataHeader, rowsOf(rows, substemmaFields))
}

// SubstemmataTSV writes rows as TSV.
func SubstemmataTSV(w io.Writer, rows []report.SubstemmaRow) error {
	return writeDelimited(w, '\t', substemmataHeader, rowsOf(rows, substemmaFields))
}

// SubstemmataJSON writes rows as a JSON array.
func SubstemmataJSON(w io.Writer, rows []report.SubstemmaRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
