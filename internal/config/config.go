// Package config holds the CLI-wide options: collation parsing flags
// (merge-splits, trivial/dropped reading types, ignored witness-siglum
// suffixes), the connectivity override, the qualifying-witness threshold,
// the set-cover upper bound, the classic/open comparator mode, and the
// cache directory.
//
// Grounded on the YAML-backed Config struct pattern in
// jinterlante1206-AleutianLocal/cmd/aleutian/main.go: a single flat struct
// populated from flags (here, rather than a config.yaml, since this CLI's
// surface is flags-only) before any subcommand runs.
package config

import (
	"github.com/jjmccollum/open-cbgm-go/compare"
	"github.com/jjmccollum/open-cbgm-go/unit"
)

// Config is the resolved set of run-wide options for one cbgm invocation.
type Config struct {
	// InputPath is the TEI collation XML file to read.
	InputPath string
	// CacheDir is the --cache directory. No subcommand opens it, so
	// comparisons are recomputed on every run.
	CacheDir string

	MergeSplits         bool
	TrivialReadingTypes []string
	DroppedReadingTypes []string
	IgnoredSuffixes     []string

	// ConnectivityOverride, when > 0, replaces every unit's declared
	// connectivity ("--connectivity-override").
	ConnectivityOverride int

	// Threshold is the minimum extant-passage count a witness must have to
	// qualify as a potential ancestor.
	Threshold int

	// Classic, when true, selects compare.Classic over compare.Open: only
	// equivalent-or-directly-prior readings explain a witness's reading,
	// and disagreement costs a flat 1 rather than the full path weight
	// ("--classic", grounded on witness.cpp's classic flag).
	Classic bool

	// UpperBound, when > 0, is a fixed cost ceiling for substemma
	// enumeration (setcover.WithUpperBound).
	UpperBound float64
}

// UnitOptions converts the collation-parsing flags into unit.Options
// construction for package xmlio.
func (c Config) UnitOptions() []unit.Option {
	opts := make([]unit.Option, 0, 4)
	if c.MergeSplits {
		opts = append(opts, unit.WithMergeSplits())
	}
	if len(c.TrivialReadingTypes) > 0 {
		opts = append(opts, unit.WithTrivialReadingTypes(c.TrivialReadingTypes...))
	}
	if len(c.DroppedReadingTypes) > 0 {
		opts = append(opts, unit.WithDroppedReadingTypes(c.DroppedReadingTypes...))
	}
	if len(c.IgnoredSuffixes) > 0 {
		opts = append(opts, unit.WithIgnoredSuffixes(c.IgnoredSuffixes...))
	}
	return opts
}

// CompareMode returns compare.Classic or compare.Open per the Classic flag.
func (c Config) CompareMode() compare.Mode {
	if c.Classic {
		return compare.Classic
	}
	return compare.Open
}

// ConnectivityOverridePtr returns a non-nil pointer to ConnectivityOverride
// when it is set, for the packages (textflow.Build) that take a *int
// override distinguishing "unset" from "zero".
func (c Config) ConnectivityOverridePtr() *int {
	if c.ConnectivityOverride <= 0 {
		return nil
	}
	v := c.ConnectivityOverride
	return &v
}
