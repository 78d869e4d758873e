package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/report"
	"github.com/jjmccollum/open-cbgm-go/table"
)

var relativesReading string

var findRelativesCmd = &cobra.Command{
	Use:   "find-relatives <primary> <unit>",
	Short: "Rank witnesses by genealogical relationship at one variation unit",
	Args:  cobra.ExactArgs(2),
	RunE:  runFindRelatives,
}

func init() {
	findRelativesCmd.Flags().StringVar(&relativesReading, "reading", "", "only show witnesses attesting this reading ID")
}

func runFindRelatives(cmd *cobra.Command, args []string) error {
	primaryID, unitID := args[0], args[1]

	cfg := currentConfig()
	app, err := loadApparatus(cfg)
	if err != nil {
		return err
	}

	u, err := app.Unit(unitID)
	if err != nil {
		return newUsageError("unit %q: %v", unitID, err)
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

	rows, err := report.FindRelativesTable(w, u, excludeID(pool, primaryID), relativesReading)
	if err != nil {
		return err
	}

	extant, err := w.Extant()
	if err != nil {
		return err
	}

	switch outputFormat {
	case "csv":
		return table.RelativesCSV(os.Stdout, rows)
	case "tsv":
		return table.RelativesTSV(os.Stdout, rows)
	case "json":
		return table.RelativesJSON(os.Stdout, rows)
	default:
		return table.RelativesFixedWidth(os.Stdout, primaryID, extant.Extant.Cardinality(), rows)
	}
}
