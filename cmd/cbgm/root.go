// Command cbgm implements the Coherence-Based Genealogical Method's
// report-generating subcommands: compare-witnesses, find-relatives,
// optimize-substemmata, textual-flow, and global-stemma.
//
// Grounded on the var-block cobra.Command declaration style in
// jinterlante1206-AleutianLocal/cmd/aleutian/commands.go: package-level var
// blocks holding the flag variables and *cobra.Command values (the root
// command and persistent flags here, each subcommand and its own flags in
// its own file), wired together in init.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jjmccollum/open-cbgm-go/internal/config"
)

// Exit codes: 0 success, 1 usage/argument error, 2 runtime (I/O, parse, or
// solver) error.
const (
	exitSuccess = 0
	exitUsage   = 1
	exitRuntime = 2
)

var (
	inputPath            string
	cacheDir             string
	mergeSplits          bool
	trivialReadingTypes  []string
	droppedReadingTypes  []string
	ignoredSuffixes      []string
	connectivityOverride int
	threshold            int
	classic              bool
	upperBound           float64
	outputFormat         string

	rootCmd = &cobra.Command{
		Use:   "cbgm",
		Short: "Coherence-Based Genealogical Method analysis tools",
		Long: `cbgm builds genealogical comparisons, potential-ancestor rankings,
optimal substemmata, textual flow diagrams, and the global stemma from a
TEI collation, per the Coherence-Based Genealogical Method.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "TEI collation XML file (required)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache", "", "cache directory (BadgerDB); no subcommand reads it, so comparisons are recomputed each run")
	rootCmd.PersistentFlags().BoolVar(&mergeSplits, "merge-splits", false, "merge readings with identical text but distinct IDs")
	rootCmd.PersistentFlags().StringSliceVar(&trivialReadingTypes, "trivial-reading-types", nil, "reading type tags to collapse onto their parent")
	rootCmd.PersistentFlags().StringSliceVar(&droppedReadingTypes, "dropped-reading-types", nil, "reading type tags to exclude entirely")
	rootCmd.PersistentFlags().StringSliceVar(&ignoredSuffixes, "ignored-suffixes", nil, "witness siglum suffixes to strip")
	rootCmd.PersistentFlags().IntVar(&connectivityOverride, "connectivity-override", 0, "override every unit's declared connectivity")
	rootCmd.PersistentFlags().IntVar(&threshold, "threshold", 0, "minimum extant-passage count to qualify as a potential ancestor")
	rootCmd.PersistentFlags().BoolVar(&classic, "classic", false, "use the classic (vs open) cost and explained-reading criterion")
	rootCmd.PersistentFlags().Float64Var(&upperBound, "upper-bound", 0, "fixed cost ceiling for substemma enumeration (0 = cheapest only)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "fixed", "output format: fixed, csv, tsv, or json")

	rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.AddCommand(compareWitnessesCmd, findRelativesCmd, optimizeSubstemmataCmd, textualFlowCmd, globalStemmaCmd)
}

func currentConfig() config.Config {
	return config.Config{
		InputPath:            inputPath,
		CacheDir:             cacheDir,
		MergeSplits:          mergeSplits,
		TrivialReadingTypes:  trivialReadingTypes,
		DroppedReadingTypes:  droppedReadingTypes,
		IgnoredSuffixes:      ignoredSuffixes,
		ConnectivityOverride: connectivityOverride,
		Threshold:            threshold,
		Classic:              classic,
		UpperBound:           upperBound,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	if _, ok := err.(*usageError); ok {
		return exitUsage
	}
	return exitRuntime
}

// usageError marks an error as a usage/argument problem (exit code 1)
// rather than a runtime failure (exit code 2).
type usageError struct{ error }

func newUsageError(format string, args ...interface{}) error {
	return &usageError{fmt.Errorf(format, args...)}
}
