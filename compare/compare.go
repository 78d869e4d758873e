// Package compare implements the genealogical comparator: for an ordered
// pair of witnesses, it produces the seven disjoint per-passage bitmaps
// (extant, agreements, prior, posterior, norel, unclear, explained) plus a
// scalar cost.
package compare

import (
	"fmt"

	"github.com/jjmccollum/open-cbgm-go/apparatus"
	"github.com/jjmccollum/open-cbgm-go/bitset"
)

// Mode selects the classic vs open interpretation of what counts as an
// explained reading and how its cost is charged. It is a construction-time
// parameter of a Comparator, never a per-call flag.
type Mode int

const (
	// Open is the default mode: every passage with a W2->W1 path is
	// explained, and contributes its full path weight to cost.
	Open Mode = iota
	// Classic restricts "explained" to posterior paths of cardinality at
	// most 1, and contributes a flat cost of 1 per extant passage that is
	// not an agreement.
	Classic
)

// Comparison is the result of comparing an ordered witness pair: seven
// bitmaps over the apparatus's shared passage universe, plus a cost.
type Comparison struct {
	Primary, Secondary                                          string
	Extant, Agreements, Prior, Posterior, Norel, Unclear, Explained bitset.Set
	Cost                                                         float64
}

// Comparator computes Comparisons for a fixed Apparatus in a fixed Mode.
type Comparator struct {
	app  *apparatus.Apparatus
	mode Mode
}

// New builds a Comparator bound to app, using the given Mode for every
// comparison it produces.
func New(app *apparatus.Apparatus, mode Mode) *Comparator {
	return &Comparator{app: app, mode: mode}
}

// Mode returns the comparator's classic/open mode.
func (c *Comparator) Mode() Mode { return c.mode }

// Compare produces the Comparison for the ordered pair (primary, secondary).
func (c *Comparator) Compare(primary, secondary string) (Comparison, error) {
	if !c.app.HasWitness(primary) {
		return Comparison{}, fmt.Errorf("%w: %q", ErrUnknownWitness, primary)
	}
	if !c.app.HasWitness(secondary) {
		return Comparison{}, fmt.Errorf("%w: %q", ErrUnknownWitness, secondary)
	}

	out := Comparison{Primary: primary, Secondary: secondary}
	units := c.app.Units()

	for i, u := range units {
		idx := uint32(i)
		r1, ok1 := u.Support(primary)
		r2, ok2 := u.Support(secondary)
		if !ok1 || !ok2 {
			continue
		}
		out.Extant.Add(idx)

		ls := u.LocalStemma()
		p12, ok12, err := ls.Path(r1, r2)
		if err != nil {
			return Comparison{}, fmt.Errorf("compare: %q vs %q at %q: %w", primary, secondary, u.ID(), err)
		}
		p21, ok21, err := ls.Path(r2, r1)
		if err != nil {
			return Comparison{}, fmt.Errorf("compare: %q vs %q at %q: %w", primary, secondary, u.ID(), err)
		}

		switch {
		case (ok12 && p12.Weight == 0) || (ok21 && p21.Weight == 0):
			out.Agreements.Add(idx)
			out.Explained.Add(idx)
		default:
			if ok21 {
				out.Posterior.Add(idx)
				switch c.mode {
				case Classic:
					if p21.Cardinality <= 1 {
						out.Explained.Add(idx)
					}
				default: // Open
					out.Explained.Add(idx)
					out.Cost += float64(p21.Weight)
				}
			}
			if ok12 {
				out.Prior.Add(idx)
			}
			if !ok12 && !ok21 {
				common, err := ls.CommonAncestorExists(r1, r2)
				if err != nil {
					return Comparison{}, fmt.Errorf("compare: %q vs %q at %q: %w", primary, secondary, u.ID(), err)
				}
				if common {
					out.Norel.Add(idx)
				} else {
					out.Unclear.Add(idx)
				}
			}
			// Classic mode charges a flat cost of 1 for every extant
			// passage that isn't an agreement (prior-only, norel, unclear,
			// and posterior alike), not just the explained posterior case.
			if c.mode == Classic {
				out.Cost += 1
			}
		}
	}

	return out, nil
}
