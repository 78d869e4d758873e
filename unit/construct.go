package unit

import (
	"fmt"

	"github.com/jjmccollum/open-cbgm-go/stemma"
)

// NewVariationUnit builds a VariationUnit from its declared readings, local
// stemma edges, raw witness support, and a connectivity bound.
//
// declaredWitnesses is the apparatus's full witness list, used to resolve
// raw sigla (which may carry ignored suffixes or a leading "#") to a base
// witness ID via suffix stripping. connectivity <= 0 is taken to mean
// Unbounded.
func NewVariationUnit(id, label string, readingDecls []ReadingDecl, localEdges []stemma.Edge, rawSupport []RawSupport, connectivity int, declaredWitnesses []string, opts ...Option) (*VariationUnit, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	declared := make(map[string]struct{}, len(declaredWitnesses))
	for _, w := range declaredWitnesses {
		declared[w] = struct{}{}
	}

	seen := make(map[string]struct{}, len(readingDecls))
	byID := make(map[string]ReadingDecl, len(readingDecls))
	dropped := make(map[string]struct{})
	survivors := make([]string, 0, len(readingDecls))

	for _, rd := range readingDecls {
		if _, dup := seen[rd.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReading, rd.ID)
		}
		seen[rd.ID] = struct{}{}
		byID[rd.ID] = rd

		if hasDroppedType(rd.Types, options.DroppedReadingTypes) {
			dropped[rd.ID] = struct{}{}
			continue
		}
		survivors = append(survivors, rd.ID)
	}

	// merge_splits: bidirectional zero-weight edges between every pair of
	// surviving readings that share identical surface text.
	extra := make([]stemma.Edge, 0)
	if options.MergeSplits {
		byText := make(map[string][]string)
		for _, id := range survivors {
			t := byID[id].Text
			byText[t] = append(byText[t], id)
		}
		for _, ids := range byText {
			for i := 0; i < len(ids); i++ {
				for j := i + 1; j < len(ids); j++ {
					extra = append(extra,
						stemma.Edge{Prior: ids[i], Posterior: ids[j], Weight: 0},
						stemma.Edge{Prior: ids[j], Posterior: ids[i], Weight: 0},
					)
				}
			}
		}
	}

	// trivial_reading_types: bidirectional zero-weight edges to the declared
	// parent of every surviving reading whose types are all trivial.
	for _, id := range survivors {
		rd := byID[id]
		if len(rd.Types) == 0 {
			continue
		}
		if hasDroppedType(rd.Types, options.DroppedReadingTypes) {
			continue
		}
		if allTrivial(rd.Types, options.TrivialReadingTypes) && rd.Parent != "" {
			extra = append(extra,
				stemma.Edge{Prior: id, Posterior: rd.Parent, Weight: 0},
				stemma.Edge{Prior: rd.Parent, Posterior: id, Weight: 0},
			)
		}
	}

	combinedEdges := append(append([]stemma.Edge{}, localEdges...), extra...)
	ls, err := stemma.NewLocalStemma(id, label, survivors, combinedEdges, nil)
	if err != nil {
		return nil, err
	}

	support := make(map[string]string, len(rawSupport))
	for _, rs := range rawSupport {
		if _, isDropped := dropped[rs.Reading]; isDropped {
			continue
		}
		base := baseSiglum(rs.Witness, options.IgnoredSuffixes, declared)
		if base == "" {
			continue // no declared witness matches any stripped prefix: attestation dropped
		}
		support[base] = rs.Reading
	}

	if connectivity <= 0 {
		connectivity = Unbounded
	}

	return &VariationUnit{
		id:           id,
		label:        label,
		readings:     survivors,
		support:      support,
		connectivity: connectivity,
		stemma:       ls,
	}, nil
}

func hasDroppedType(types []string, dropped map[string]struct{}) bool {
	for _, t := range types {
		if _, ok := dropped[t]; ok {
			return true
		}
	}
	return false
}

func allTrivial(types []string, trivial map[string]struct{}) bool {
	for _, t := range types {
		if _, ok := trivial[t]; !ok {
			return false
		}
	}
	return true
}

// baseSiglum resolves a raw witness siglum to a declared base witness,
// stripping a leading "#" and then repeatedly stripping the first suffix in
// the configured list that matches until a declared witness is found, or
// no suffix applies.
func baseSiglum(raw string, ignoredSuffixes []string, declared map[string]struct{}) string {
	s := raw
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if _, ok := declared[s]; ok {
		return s
	}
	for {
		stripped := false
		for _, suffix := range ignoredSuffixes {
			if len(suffix) > 0 && len(s) > len(suffix) && s[len(s)-len(suffix):] == suffix {
				s = s[:len(s)-len(suffix)]
				stripped = true
				break
			}
		}
		if !stripped {
			return ""
		}
		if _, ok := declared[s]; ok {
			return s
		}
	}
}
