package dot

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jjmccollum/open-cbgm-go/textflow"
	"github.com/jjmccollum/open-cbgm-go/unit"
)

func edgeColor(k textflow.EdgeKind) string {
	switch k {
	case textflow.Equal:
		return "color=black"
	case textflow.Change:
		return "color=blue"
	case textflow.Loss:
		return "color=gray"
	default:
		return "color=black"
	}
}

// strengthStyle bands a flow edge's strength into a line style, per
// textual_flow.cpp's textual_flow_to_dot: <0.01 dotted, <0.05 dashed,
// <0.1 solid, else bold.
func strengthStyle(strength float64) string {
	switch {
	case strength < 0.01:
		return "style=dotted"
	case strength < 0.05:
		return "style=dashed"
	case strength < 0.1:
		return "style=solid"
	default:
		return "style=bold"
	}
}

func buildIndex(vertices []textflow.Vertex) map[string]int {
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v.WitnessID] = i
	}
	return index
}

func writeHeader(w io.Writer, name, label string) {
	fmt.Fprintf(w, "digraph %s {\n", name)
	fmt.Fprintln(w, "\tsubgraph cluster_legend {")
	fmt.Fprintf(w, "\t\tlabel [shape=plaintext, label=\"%s\"];\n", label)
	fmt.Fprintln(w, "\t}")
	fmt.Fprintln(w, "\tsubgraph cluster_plot {")
	fmt.Fprintln(w, "\t\tstyle=invis;")
	fmt.Fprintln(w, "\t\tnode [shape=ellipse];")
}

func writeVertex(w io.Writer, index int, v textflow.Vertex) {
	fmt.Fprintf(w, "\t\t%d", index)
	if v.HasReading {
		fmt.Fprintf(w, " [label=\"%s (%s)\"]", v.WitnessID, v.Reading)
	} else {
		fmt.Fprintf(w, " [label=\"%s\", color=gray, style=dashed]", v.WitnessID)
	}
	fmt.Fprintln(w, ";")
}

func writeFormattedEdge(w io.Writer, fromIdx, toIdx int, rank int, kind textflow.EdgeKind, strength float64, flowStrengths bool) {
	cmds := make([]string, 0, 3)
	if rank > 0 {
		cmds = append(cmds, fmt.Sprintf("label=\"%s\", fontsize=10", strconv.Itoa(rank+1)))
	}
	cmds = append(cmds, edgeColor(kind))
	if flowStrengths {
		cmds = append(cmds, strengthStyle(strength))
	}
	fmt.Fprintf(w, "\t\t%d -> %d [%s];\n", fromIdx, toIdx, strings.Join(cmds, ", "))
}

// TextualFlow writes the complete textual flow diagram for g: every
// witness vertex, and one edge per descendant (the first encountered, in
// g.Edges order, mirroring textual_flow_to_dot's "skip once a destination
// already has an edge drawn to it").
func TextualFlow(w io.Writer, g *textflow.Graph, connectivity int, flowStrengths bool) error {
	conLabel := "Absolute"
	if connectivity != unit.Unbounded {
		conLabel = strconv.Itoa(connectivity)
	}
	writeHeader(w, "textual_flow", fmt.Sprintf("%s\\nCon = %s", g.UnitID, conLabel))

	index := buildIndex(g.Vertices)
	for i, v := range g.Vertices {
		writeVertex(w, i, v)
	}

	drawn := map[string]bool{}
	for _, e := range g.Edges {
		if drawn[e.To] {
			continue
		}
		drawn[e.To] = true
		writeFormattedEdge(w, index[e.From], index[e.To], e.Rank, e.Kind, e.Strength, flowStrengths)
	}

	fmt.Fprintln(w, "\t}")
	fmt.Fprintln(w, "}")
	return nil
}

// CoherenceInAttestations writes the subgraph of g restricted to witnesses
// attesting rdg plus their flow ancestors, per
// coherence_in_attestations_to_dot.
func CoherenceInAttestations(w io.Writer, g *textflow.Graph, rdg string, flowStrengths bool) error {
	writeHeader(w, "coherence_in_attestations", fmt.Sprintf("%s, rdg %s", g.UnitID, rdg))

	attesting := map[string]bool{}
	for _, v := range g.Vertices {
		if v.HasReading && v.Reading == rdg {
			attesting[v.WitnessID] = true
		}
	}

	relevant := map[string]bool{}
	for _, e := range g.Edges {
		if attesting[e.To] {
			relevant[e.From] = true
			relevant[e.To] = true
		}
	}

	var kept []textflow.Vertex
	for _, v := range g.Vertices {
		if relevant[v.WitnessID] {
			kept = append(kept, v)
		}
	}
	index := buildIndex(kept)
	for i, v := range kept {
		writeVertex(w, i, v)
	}

	drawn := map[string]bool{}
	for _, e := range g.Edges {
		if !attesting[e.To] || drawn[e.To] {
			continue
		}
		drawn[e.To] = true
		writeFormattedEdge(w, index[e.From], index[e.To], e.Rank, e.Kind, e.Strength, flowStrengths)
	}

	fmt.Fprintln(w, "\t}")
	fmt.Fprintln(w, "}")
	return nil
}

// CoherenceInVariantPassages writes only the CHANGE edges of g and the
// vertices at either end of one, per
// coherence_in_variant_passages_to_dot.
func CoherenceInVariantPassages(w io.Writer, g *textflow.Graph, flowStrengths bool) error {
	writeHeader(w, "coherence_in_variant_passages", g.UnitID)

	touched := map[string]bool{}
	var changes []textflow.Edge
	for _, e := range g.Edges {
		if e.Kind != textflow.Change {
			continue
		}
		changes = append(changes, e)
		touched[e.From] = true
		touched[e.To] = true
	}

	var kept []textflow.Vertex
	for _, v := range g.Vertices {
		if touched[v.WitnessID] {
			kept = append(kept, v)
		}
	}
	index := buildIndex(kept)
	for i, v := range kept {
		writeVertex(w, i, v)
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].From != changes[j].From {
			return changes[i].From < changes[j].From
		}
		return changes[i].To < changes[j].To
	})
	for _, e := range changes {
		writeFormattedEdge(w, index[e.From], index[e.To], e.Rank, e.Kind, e.Strength, flowStrengths)
	}

	fmt.Fprintln(w, "\t}")
	fmt.Fprintln(w, "}")
	return nil
}
