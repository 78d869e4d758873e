package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/dot"
	"github.com/jjmccollum/open-cbgm-go/textflow"
)

var (
	flowVariant   string
	flowReading   string
	flowStrengths bool
)

var textualFlowCmd = &cobra.Command{
	Use:   "textual-flow <unit>",
	Short: "Render a variation unit's textual flow diagram as DOT",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextualFlow,
}

func init() {
	textualFlowCmd.Flags().StringVar(&flowVariant, "variant", "full", "diagram variant: full, attestations, or variant-passages")
	textualFlowCmd.Flags().StringVar(&flowReading, "reading", "", "reading ID to restrict to, for --variant attestations")
	textualFlowCmd.Flags().BoolVar(&flowStrengths, "flow-strengths", false, "style edges by flow strength instead of plain color")
}

func runTextualFlow(cmd *cobra.Command, args []string) error {
	unitID := args[0]

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
	witnesses, err := buildAllWitnesses(c, pool)
	if err != nil {
		return err
	}

	con := cfg.ConnectivityOverridePtr()
	g, err := textflow.Build(app, u, witnesses, con)
	if err != nil {
		return err
	}

	connectivity := u.Connectivity()
	if con != nil {
		connectivity = *con
	}

	switch flowVariant {
	case "attestations":
		if flowReading == "" {
			return newUsageError("--variant attestations requires --reading")
		}
		return dot.CoherenceInAttestations(os.Stdout, g, flowReading, flowStrengths)
	case "variant-passages":
		return dot.CoherenceInVariantPassages(os.Stdout, g, flowStrengths)
	default:
		return dot.TextualFlow(os.Stdout, g, connectivity, flowStrengths)
	}
}
