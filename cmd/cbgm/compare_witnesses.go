package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/report"
	"github.com/jjmccollum/open-cbgm-go/table"
)

var compareWitnessesCmd = &cobra.Command{
	Use:   "compare-witnesses <primary> [secondary...]",
	Short: "Print genealogical comparisons of one witness against others",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompareWitnesses,
}

func runCompareWitnesses(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	app, err := loadApparatus(cfg)
	if err != nil {
		return err
	}

	pool, err := qualifyingWitnesses(app, cfg)
	if err != nil {
		return err
	}
	secondaries := args[1:]
	if len(secondaries) == 0 {
		secondaries = excludeID(pool, args[0])
	}

	c := compare.New(app, cfg.CompareMode())
	w, err := buildWitness(c, args[0], pool)
	if err != nil {
		return err
	}

	rows, err := report.CompareWitnessesTable(w, secondaries)
	if err != nil {
		return err
	}

	return renderComparisons(os.Stdout, args[0], rows)
}

func renderComparisons(w *os.File, primaryID string, rows []report.ComparisonRow) error {
	switch outputFormat {
	case "csv":
		return table.ComparisonsCSV(w, rows)
	case "tsv":
		return table.ComparisonsTSV(w, rows)
	case "json":
		return table.ComparisonsJSON(w, rows)
	default:
		return table.ComparisonsFixedWidth(w, primaryID, rows)
	}
}
