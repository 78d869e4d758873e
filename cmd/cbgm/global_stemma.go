package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/dot"
	"github.com/jjmccollum/open-cbgm-go/globalstemma"
	"github.com/jjmccollum/open-cbgm-go/setcover"
)

var globalStemmaCmd = &cobra.Command{
	Use:   "global-stemma",
	Short: "Render the global stemma of every qualifying witness as DOT",
	Args:  cobra.NoArgs,
	RunE:  runGlobalStemma,
}

func runGlobalStemma(cmd *cobra.Command, args []string) error {
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
	witnesses, err := buildAllWitnesses(c, pool)
	if err != nil {
		return err
	}

	solutions := make(map[string][]setcover.Solution, len(witnesses))
	for id, w := range witnesses {
		sols, err := solveAndCommit(w, cfg)
		if err != nil {
			return err
		}
		solutions[id] = sols
	}

	g, err := globalstemma.Build(witnesses, solutions)
	if err != nil {
		return err
	}

	return dot.GlobalStemma(os.Stdout, g)
}
