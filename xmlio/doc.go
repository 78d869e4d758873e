// Package xmlio reads a TEI-style critical apparatus collation from XML
// into an *apparatus.Apparatus.
//
// Grounded on original_source/src/populate_db.cpp (the <TEI> root entry
// point), original_source/src/variation_unit.cpp (the <app>/<rdg>/
// <witDetail> element shapes, the xml:id/id/n ID fallback chain, the
// space-separated type and wit attribute parsing, and the connectivity
// XPath lookup) and original_source/src/local_stemma.cpp (the <graph>/
// <node>/<arc> local-stemma shape). Only encoding/xml is used here: no
// general-purpose third-party XML decoder exists as a candidate, so this
// is one of the few stdlib-only corners of the module (see DESIGN.md).
package xmlio

import "encoding/xml"

// witDecl is one <witness> child of <listWit>.
type witDecl struct {
	ID string `xml:"xml:id,attr"`
	Id string `xml:"id,attr"`
	N  string `xml:"n,attr"`
}

// appElement is one <app> variation unit.
type appElement struct {
	XMLID string `xml:"xml:id,attr"`
	ID    string `xml:"id,attr"`
	N     string `xml:"n,attr"`

	Label rawElement `xml:"label"`

	Readings []readingElement `xml:"rdg"`
	Details  []readingElement `xml:"witDetail"`

	Note noteElement `xml:"note"`
}

type rawElement struct {
	Text string `xml:",chardata"`
}

type readingElement struct {
	XMLID string `xml:"xml:id,attr"`
	ID    string `xml:"id,attr"`
	N     string `xml:"n,attr"`
	Type  string `xml:"type,attr"`
	Wit   string `xml:"wit,attr"`
	Text  string `xml:",chardata"`
}

// noteElement carries the optional connectivity annotation and the
// optional local-stemma <graph>, per variation_unit.cpp's
// note/fs/f[@name="connectivity"]/numeric/@value XPath and the sibling
// <graph> element it builds the local stemma from.
type noteElement struct {
	FS    fsElement  `xml:"fs"`
	Graph graphElem  `xml:"graph"`
}

type fsElement struct {
	Features []featureElement `xml:"f"`
}

type featureElement struct {
	Name    string      `xml:"name,attr"`
	Numeric numericElem `xml:"numeric"`
}

type numericElem struct {
	Value string `xml:"value,attr"`
}

type graphElem struct {
	Nodes []nodeElem `xml:"node"`
	Arcs  []arcElem  `xml:"arc"`
}

type nodeElem struct {
	N string `xml:"n,attr"`
}

type arcElem struct {
	From   string `xml:"from,attr"`
	To     string `xml:"to,attr"`
	Weight string `xml:"weight,attr"`
}
