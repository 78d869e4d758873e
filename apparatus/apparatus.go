// Package apparatus implements the apparatus model: an ordered witness list
// plus an ordered variation-unit vector whose position defines the passage
// index used by every bitmap in the system (the order of units defines
// passage indices 0..N-1).
package apparatus

import (
	"fmt"

	"github.com/jjmccollum/open-cbgm-go/unit"
)

// Apparatus is the immutable, ordered collation: the declared witness list
// and the ordered variation-unit vector that assigns passage indices.
type Apparatus struct {
	listWit   []string
	units     []*unit.VariationUnit
	witIndex  map[string]struct{}
	unitIndex map[string]int
}

// New builds an Apparatus. listWit and units must each be free of
// duplicate IDs; units are indexed 0..len(units)-1 in the order given.
func New(listWit []string, units []*unit.VariationUnit) (*Apparatus, error) {
	witIndex := make(map[string]struct{}, len(listWit))
	for _, w := range listWit {
		if _, dup := witIndex[w]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWitness, w)
		}
		witIndex[w] = struct{}{}
	}

	unitIndex := make(map[string]int, len(units))
	for i, u := range units {
		if _, dup := unitIndex[u.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUnit, u.ID())
		}
		unitIndex[u.ID()] = i
	}

	listCopy := make([]string, len(listWit))
	copy(listCopy, listWit)
	unitsCopy := make([]*unit.VariationUnit, len(units))
	copy(unitsCopy, units)

	return &Apparatus{
		listWit:   listCopy,
		units:     unitsCopy,
		witIndex:  witIndex,
		unitIndex: unitIndex,
	}, nil
}

// Witnesses returns the declared witness IDs, in apparatus order.
func (a *Apparatus) Witnesses() []string {
	out := make([]string, len(a.listWit))
	copy(out, a.listWit)
	return out
}

// Units returns the variation units, in passage-index order.
func (a *Apparatus) Units() []*unit.VariationUnit {
	out := make([]*unit.VariationUnit, len(a.units))
	copy(out, a.units)
	return out
}

// N is the apparatus's passage count: the shared bitmap universe size.
func (a *Apparatus) N() int { return len(a.units) }

// Unit returns the variation unit with the given ID.
func (a *Apparatus) Unit(unitID string) (*unit.VariationUnit, error) {
	i, ok := a.unitIndex[unitID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPassage, unitID)
	}
	return a.units[i], nil
}

// PassageIndex returns the 0-based position of a variation unit.
func (a *Apparatus) PassageIndex(unitID string) (int, error) {
	i, ok := a.unitIndex[unitID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPassage, unitID)
	}
	return i, nil
}

// HasWitness reports whether witnessID is declared in this apparatus.
func (a *Apparatus) HasWitness(witnessID string) bool {
	_, ok := a.witIndex[witnessID]
	return ok
}

// ExtantPassages returns the number of variation units at which witnessID
// has a reading (is not lacunose).
func (a *Apparatus) ExtantPassages(witnessID string) (int, error) {
	if !a.HasWitness(witnessID) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWitness, witnessID)
	}
	count := 0
	for _, u := range a.units {
		if _, ok := u.Support(witnessID); ok {
			count++
		}
	}
	return count, nil
}

// QualifyingWitnesses returns the declared witnesses, in apparatus order,
// whose extant-passage count is at least threshold.
func (a *Apparatus) QualifyingWitnesses(threshold int) ([]string, error) {
	out := make([]string, 0, len(a.listWit))
	for _, w := range a.listWit {
		n, err := a.ExtantPassages(w)
		if err != nil {
			return nil, err
		}
		if n >= threshold {
			out = append(out, w)
		}
	}
	return out, nil
}
