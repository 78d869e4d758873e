package dot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jjmccollum/open-cbgm-go/dot"
	"github.com/jjmccollum/open-cbgm-go/globalstemma"
	"github.com/jjmccollum/open-cbgm-go/stemma"
	"github.com/jjmccollum/open-cbgm-go/textflow"
	"github.com/jjmccollum/open-cbgm-go/unit"
	"github.com/stretchr/testify/require"
)

func TestLocalStemmaWritesDigraph(t *testing.T) {
	ls, err := stemma.NewLocalStemma("u1", "Acts 1:13", []string{"a", "b"},
		[]stemma.Edge{{Prior: "a", Posterior: "b", Weight: 1}}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dot.LocalStemma(&buf, ls))
	out := buf.String()
	require.Contains(t, out, "digraph local_stemma {")
	require.Contains(t, out, "label=\"Acts 1:13\"")
	require.Contains(t, out, "0 -> 1;")
}

func TestTextualFlowLabelsConnectivityAndStylesChangeEdge(t *testing.T) {
	g := &textflow.Graph{
		UnitID: "u1",
		Vertices: []textflow.Vertex{
			{WitnessID: "A", Reading: "a", HasReading: true},
			{WitnessID: "B", Reading: "b", HasReading: true},
		},
		Edges: []textflow.Edge{
			{From: "A", To: "B", Rank: 0, Kind: textflow.Change, Strength: 0.2},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, dot.TextualFlow(&buf, g, unit.Unbounded, true))
	out := buf.String()
	require.Contains(t, out, "Con = Absolute")
	require.Contains(t, out, "color=blue")
	require.Contains(t, out, "style=bold")
}

func TestCoherenceInVariantPassagesOnlyKeepsChangeEdges(t *testing.T) {
	g := &textflow.Graph{
		UnitID: "u1",
		Vertices: []textflow.Vertex{
			{WitnessID: "A", Reading: "a", HasReading: true},
			{WitnessID: "B", Reading: "a", HasReading: true},
			{WitnessID: "C", Reading: "c", HasReading: true},
		},
		Edges: []textflow.Edge{
			{From: "A", To: "B", Kind: textflow.Equal, Strength: 0},
			{From: "A", To: "C", Kind: textflow.Change, Strength: 0.2},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, dot.CoherenceInVariantPassages(&buf, g, false))
	out := buf.String()
	require.NotContains(t, out, "\"B (a)\"")
	require.Contains(t, out, "\"A (a)\"")
	require.Contains(t, out, "\"C (c)\"")
}

func TestGlobalStemmaMarksAmbiguousEdgesDashed(t *testing.T) {
	g := &globalstemma.Graph{
		Vertices: []globalstemma.Vertex{{WitnessID: "A"}, {WitnessID: "B"}},
		Edges:    []globalstemma.Edge{{Ancestor: "A", Descendant: "B", Weight: 0.8, Ambiguous: true}},
	}
	var buf bytes.Buffer
	require.NoError(t, dot.GlobalStemma(&buf, g))
	require.True(t, strings.Contains(buf.String(), "style=dashed"))
}
