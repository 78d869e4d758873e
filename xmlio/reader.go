package xmlio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jjmccollum/open-cbgm-go/apparatus"
	"github.com/jjmccollum/open-cbgm-go/stemma"
	"github.com/jjmccollum/open-cbgm-go/unit"
)

// listWitElem decodes a <listWit> element's declared witnesses.
type listWitElem struct {
	Witnesses []witDecl `xml:"witness"`
}

// Parse reads a TEI collation from r and builds an *apparatus.Apparatus.
//
// It streams tokens looking for the first <listWit> (mirroring
// apparatus.cpp's fixed teiHeader/fileDesc/sourceDesc/listWit/witness path)
// and every <app> at any depth (its "descendant::app" XPath query), since
// collations nest variation units under <body>/<div>/<p> to varying depths.
// opts are forwarded to unit.NewVariationUnit for every unit parsed (merge-
// splits, trivial/dropped reading types, ignored witness-siglum suffixes).
func Parse(r io.Reader, opts ...unit.Option) (*apparatus.Apparatus, error) {
	dec := xml.NewDecoder(r)

	var listWit []string
	var haveListWit bool
	var elements []appElement

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmlio: token: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "listWit":
			if haveListWit {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("xmlio: skip extra listWit: %w", err)
				}
				continue
			}
			var lw listWitElem
			if err := dec.DecodeElement(&lw, &se); err != nil {
				return nil, fmt.Errorf("xmlio: decode listWit: %w", err)
			}
			for _, w := range lw.Witnesses {
				id := firstNonEmpty(w.ID, w.Id, w.N)
				if id == "" {
					return nil, ErrMissingID
				}
				listWit = append(listWit, id)
			}
			haveListWit = true
		case "app":
			var ae appElement
			if err := dec.DecodeElement(&ae, &se); err != nil {
				return nil, fmt.Errorf("xmlio: decode app: %w", err)
			}
			elements = append(elements, ae)
		}
	}

	if !haveListWit || len(listWit) == 0 {
		return nil, ErrNoWitnessList
	}

	units := make([]*unit.VariationUnit, 0, len(elements))
	for _, ae := range elements {
		u, err := unitFromElement(ae, listWit, opts...)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return apparatus.New(listWit, units)
}

func unitFromElement(ae appElement, listWit []string, opts ...unit.Option) (*unit.VariationUnit, error) {
	id := firstNonEmpty(ae.XMLID, ae.ID, ae.N)
	if id == "" {
		return nil, ErrMissingID
	}
	label := strings.TrimSpace(ae.Label.Text)
	if label == "" {
		label = id
	}

	// rdg and witDetail elements are merged in declaration order within
	// each kind; interleaving between the two kinds as they appeared in
	// the source is not preserved (encoding/xml groups repeated child
	// elements by tag), which affects display order only, not semantics.
	rdgs := make([]readingElement, 0, len(ae.Readings)+len(ae.Details))
	rdgs = append(rdgs, ae.Readings...)
	rdgs = append(rdgs, ae.Details...)

	nodeSet := make(map[string]struct{}, len(ae.Note.Graph.Nodes))
	for _, n := range ae.Note.Graph.Nodes {
		nodeSet[n.N] = struct{}{}
	}

	decls := make([]unit.ReadingDecl, 0, len(rdgs))
	var support []unit.RawSupport
	for _, r := range rdgs {
		rdgID := firstNonEmpty(r.XMLID, r.ID, r.N)
		if rdgID == "" {
			return nil, fmt.Errorf("%w: reading in unit %q", ErrMissingID, id)
		}
		decls = append(decls, unit.ReadingDecl{
			ID:    rdgID,
			Text:  strings.TrimSpace(r.Text),
			Types: strings.Fields(r.Type),
		})
		for _, wit := range strings.Fields(r.Wit) {
			support = append(support, unit.RawSupport{Witness: wit, Reading: rdgID})
		}
	}

	edges := make([]stemma.Edge, 0, len(ae.Note.Graph.Arcs))
	for _, arc := range ae.Note.Graph.Arcs {
		if len(nodeSet) > 0 {
			if _, ok := nodeSet[arc.From]; !ok {
				return nil, fmt.Errorf("xmlio: unit %q: arc references unknown node %q", id, arc.From)
			}
			if _, ok := nodeSet[arc.To]; !ok {
				return nil, fmt.Errorf("xmlio: unit %q: arc references unknown node %q", id, arc.To)
			}
		}
		edges = append(edges, stemma.Edge{
			Prior:     arc.From,
			Posterior: arc.To,
			Weight:    parseWeight(arc.Weight),
		})
	}

	connectivity := parseConnectivity(ae.Note.FS.Features)

	return unit.NewVariationUnit(id, label, decls, edges, support, connectivity, listWit, opts...)
}

func parseConnectivity(features []featureElement) int {
	for _, f := range features {
		if f.Name != "connectivity" {
			continue
		}
		n, err := strconv.Atoi(f.Numeric.Value)
		if err != nil || n <= 0 {
			return unit.Unbounded
		}
		return n
	}
	return unit.Unbounded
}

// parseWeight defaults to 1 (an ordinary derivation edge) when the arc
// carries no weight attribute, a negative one, or one that is not an
// integer; weight="0" yields a zero-weight (equivalence) edge, alongside
// those added by merge-splits and trivial-reading-type handling in
// package unit.
func parseWeight(s string) int64 {
	if s == "" {
		return 1
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 1
	}
	return n
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}
