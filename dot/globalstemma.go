package dot

import (
	"fmt"
	"io"
	"sort"

	"github.com/jjmccollum/open-cbgm-go/globalstemma"
)

// GlobalStemma writes g in DOT format: one plaintext node per witness, one
// edge per (ancestor, descendant) pair with penwidth and arrowsize scaled
// by its relative-agreement weight, per global_stemma.cpp's to_dot.
// Ambiguous edges (a supplemented feature, see package globalstemma) are
// additionally dashed.
func GlobalStemma(w io.Writer, g *globalstemma.Graph) error {
	fmt.Fprintln(w, "digraph global_stemma {")
	fmt.Fprintln(w, "\tnode [shape=plaintext];")
	fmt.Fprintln(w, "\tlabel [shape=box, label=\"Global Stemma\"];")

	index := make(map[string]int, len(g.Vertices))
	for i, v := range g.Vertices {
		index[v.WitnessID] = i
		fmt.Fprintf(w, "\t%d [label=\"%s\"];\n", i, v.WitnessID)
	}

	edges := append([]globalstemma.Edge{}, g.Edges...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Descendant != edges[j].Descendant {
			return edges[i].Descendant < edges[j].Descendant
		}
		return edges[i].Ancestor < edges[j].Ancestor
	})
	for _, e := range edges {
		attrs := fmt.Sprintf("penwidth=%g, arrowsize=%g", e.Weight, e.Weight)
		if e.Ambiguous {
			attrs += ", style=dashed"
		}
		fmt.Fprintf(w, "\t%d -> %d [%s];\n", index[e.Ancestor], index[e.Descendant], attrs)
	}

	fmt.Fprintln(w, "}")
	return nil
}
