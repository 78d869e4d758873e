// Package unit implements the variation-unit model: the per-passage bundle
// of a reading list, witness-to-reading support, a connectivity bound, and
// a local stemma (package stemma).
//
// Construction mirrors the original apparatus reader's handling of reading
// types and witness sigla (grounded on original_source/src/variation_unit.cpp):
// trivial reading types and merged splits become extra zero-weight edges
// fed into the local stemma rather than vertex deletions, dropped reading
// types remove the reading and lacunize its witnesses, and witness sigla are
// resolved to a declared base witness by progressively stripping configured
// suffixes.
package unit

import (
	"math"

	"github.com/jjmccollum/open-cbgm-go/stemma"
)

// Unbounded represents an unset connectivity bound: connectivity=∞ means
// unbounded.
const Unbounded = math.MaxInt

// ReadingDecl declares one reading of a variation unit before construction
// options (trivial collapsing, split merging, dropping) are applied.
type ReadingDecl struct {
	// ID is the reading's identifier, unique among a unit's readings.
	ID string
	// Text is the reading's surface text, used to detect merge-splits
	// candidates (identical text, distinct ID).
	Text string
	// Types is the reading's space-separated type tag list, already split.
	Types []string
	// Parent names the textually significant reading this one is a trivial
	// variant of. Used only when every entry of Types is one of the
	// construction options' TrivialReadingTypes; ignored otherwise. A
	// trivial reading with an empty Parent gets no added edges.
	Parent string
}

// RawSupport is one raw (witness siglum, reading ID) attestation, as
// extracted from a collation's wit="..." attribute before suffix stripping.
type RawSupport struct {
	Witness string
	Reading string
}

// Options controls construction.
type Options struct {
	MergeSplits         bool
	TrivialReadingTypes map[string]struct{}
	DroppedReadingTypes map[string]struct{}
	IgnoredSuffixes     []string
}

// Option configures a VariationUnit at construction time.
type Option func(*Options)

// DefaultOptions returns the zero-value configuration: no merging, no
// trivial or dropped reading types, no suffix stripping.
func DefaultOptions() Options {
	return Options{
		TrivialReadingTypes: map[string]struct{}{},
		DroppedReadingTypes: map[string]struct{}{},
	}
}

// WithMergeSplits treats readings with identical surface text but distinct
// IDs as the same node, by adding zero-weight edges both ways between them.
func WithMergeSplits() Option {
	return func(o *Options) { o.MergeSplits = true }
}

// WithTrivialReadingTypes marks type tags whose readings collapse onto
// their declared Parent via added zero-weight edges both ways.
func WithTrivialReadingTypes(types ...string) Option {
	return func(o *Options) {
		for _, t := range types {
			o.TrivialReadingTypes[t] = struct{}{}
		}
	}
}

// WithDroppedReadingTypes marks type tags whose readings (and the support
// of any witness attesting only them) are excluded entirely; such witnesses
// become lacunose at this unit.
func WithDroppedReadingTypes(types ...string) Option {
	return func(o *Options) {
		for _, t := range types {
			o.DroppedReadingTypes[t] = struct{}{}
		}
	}
}

// WithIgnoredSuffixes lists siglum suffixes to strip, in list order (the
// first listed suffix that matches is stripped), when resolving a raw
// witness siglum to a declared base witness.
func WithIgnoredSuffixes(suffixes ...string) Option {
	return func(o *Options) { o.IgnoredSuffixes = append(o.IgnoredSuffixes, suffixes...) }
}

// VariationUnit is the immutable per-passage bundle.
type VariationUnit struct {
	id           string
	label        string
	readings     []string
	support      map[string]string
	connectivity int
	stemma       *stemma.LocalStemma
}

// ID returns the variation unit's identifier.
func (u *VariationUnit) ID() string { return u.id }

// Label returns the variation unit's human-readable label.
func (u *VariationUnit) Label() string { return u.label }

// Readings returns the surviving reading IDs, in declaration order.
func (u *VariationUnit) Readings() []string {
	out := make([]string, len(u.readings))
	copy(out, u.readings)
	return out
}

// Connectivity returns the connectivity bound, or Unbounded.
func (u *VariationUnit) Connectivity() int { return u.connectivity }

// LocalStemma returns the unit's local stemma.
func (u *VariationUnit) LocalStemma() *stemma.LocalStemma { return u.stemma }

// Support returns the reading a witness attests at this unit, and true; or
// ("", false) if the witness is lacunose here.
func (u *VariationUnit) Support(witnessID string) (string, bool) {
	r, ok := u.support[witnessID]
	return r, ok
}
