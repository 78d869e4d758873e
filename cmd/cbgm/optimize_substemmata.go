package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/report"
	"github.com/jjmccollum/open-cbgm-go/table"
)

var optimizeSubstemmataCmd = &cobra.Command{
	Use:   "optimize-substemmata <primary>",
	Short: "Enumerate minimum-cost sets of witnesses that jointly explain a witness's text",
	Args:  cobra.ExactArgs(1),
	RunE:  runOptimizeSubstemmata,
}

func runOptimizeSubstemmata(cmd *cobra.Command, args []string) error {
	primaryID := args[0]

	cfg := currentConfig()
	app, err := loadApparatus(cfg)
	if err != nil {
		return err
	}

	pool, err := qualifyingWitnesses(app, cfg)
	if err != nil {
		return err
	}

	c := compare.New(app, cfg.CompareMode())
	w, err := buildWitness(c, primaryID, pool)
	if err != nil {
		return err
	}

	solutions, err := solveAndCommit(w, cfg)
	if err != nil {
		return err
	}

	rows := report.OptimizeSubstemmataTable(solutions)

	switch outputFormat {
	case "csv":
		return table.SubstemmataCSV(os.Stdout, rows)
	case "tsv":
		return table.SubstemmataTSV(os.Stdout, rows)
	case "json":
		return table.SubstemmataJSON(os.Stdout, rows)
	default:
		return table.SubstemmataFixedWidth(os.Stdout, primaryID, rows)
	}
}
