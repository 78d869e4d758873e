package main

import (
	"fmt"
	"os"

	"github.com/jjmccollum/open-cbgm-go/apparatus"
	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/internal/config"
	"github.com/jjmccollum/open-cbgm-go/setcover"
	"github.com/jjmccollum/open-cbgm-go/witness"
	"github.com/jjmccollum/open-cbgm-go/xmlio"
)

// loadApparatus reads cfg.InputPath and builds the apparatus package's
// ordered collation, forwarding the collation-parsing flags.
func loadApparatus(cfg config.Config) (*apparatus.Apparatus, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", cfg.InputPath, err)
	}
	defer f.Close()
	return xmlio.Parse(f, cfg.UnitOptions()...)
}

// qualifyingWitnesses resolves the comparison pool: every declared witness
// meeting cfg.Threshold extant passages, or every declared witness when
// Threshold is unset.
func qualifyingWitnesses(app *apparatus.Apparatus, cfg config.Config) ([]string, error) {
	if cfg.Threshold <= 0 {
		return app.Witnesses(), nil
	}
	return app.QualifyingWitnesses(cfg.Threshold)
}

// buildWitness populates one primary witness's comparisons against pool
// and ranks its potential ancestors, the lifecycle's first two phases
// (package witness's doc comment).
func buildWitness(c *compare.Comparator, id string, pool []string) (*witness.Witness, error) {
	w := witness.New(id)
	if err := w.Compare(c, pool); err != nil {
		return nil, err
	}
	if err := w.RankPotentialAncestors(pool); err != nil {
		return nil, err
	}
	return w, nil
}

// buildAllWitnesses runs buildWitness for every witness in pool, for
// commands (textual-flow, global-stemma) that need every witness fully
// processed rather than just one primary.
func buildAllWitnesses(c *compare.Comparator, pool []string) (map[string]*witness.Witness, error) {
	out := make(map[string]*witness.Witness, len(pool))
	for _, id := range pool {
		w, err := buildWitness(c, id, pool)
		if err != nil {
			return nil, err
		}
		out[id] = w
	}
	return out, nil
}

// excludeID returns pool with id removed, for commands that default their
// secondary-witness argument to the full pool and must not compare a
// witness against itself (find_relatives_table.cpp's constructor skips
// secondary_wit_id == id the same way).
func excludeID(pool []string, id string) []string {
	out := make([]string, 0, len(pool))
	for _, p := range pool {
		if p != id {
			out = append(out, p)
		}
	}
	return out
}

// substemmaOptions converts the upper-bound flag into setcover.Option
// values.
func substemmaOptions(cfg config.Config) []setcover.Option {
	if cfg.UpperBound > 0 {
		return []setcover.Option{setcover.WithUpperBound(cfg.UpperBound)}
	}
	return nil
}

// solveAndCommit runs w's substemma search, commits the first (cheapest)
// solution via SetSubstemmaAncestors, warns on truncation, and returns
// every optimal solution found (for globalstemma's ambiguity computation).
func solveAndCommit(w *witness.Witness, cfg config.Config) ([]setcover.Solution, error) {
	solutions, err := w.Substemmata(substemmaOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	if len(solutions) > 0 {
		w.SetSubstemmaAncestors(solutions[0].Rows)
		if solutions[0].Truncated {
			fmt.Fprintf(os.Stderr, "warning: substemma search for %s truncated before completion; result may not be optimal\n", w.ID())
		}
	}
	return solutions, nil
}
