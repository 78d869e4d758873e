package dot

import (
	"fmt"
	"io"
	"sort"

	"github.com/jjmccollum/open-cbgm-go/core"
	"github.com/jjmccollum/open-cbgm-go/stemma"
)

// LocalStemma writes ls in DOT format, one node per reading. Edges are
// drawn plain; distinguishing zero-weight (equivalence) edges visually is
// left to a caller-side edge-label pass rather than a dedicated flag here.
func LocalStemma(w io.Writer, ls *stemma.LocalStemma) error {
	fmt.Fprintln(w, "digraph local_stemma {")
	fmt.Fprintln(w, "\tgraph [fontname = \"helvetica\", fontsize=15];")
	fmt.Fprintln(w, "\tnode [fontname = \"helvetica\", fontsize=15];")
	fmt.Fprintln(w, "\tedge [fontname = \"helvetica\", fontsize=15];")
	fmt.Fprintln(w, "\tnode [shape=plaintext];")
	fmt.Fprintf(w, "\tlabel [shape=box, label=\"%s\"];\n", ls.Label())

	readings := ls.Readings()
	index := make(map[string]int, len(readings))
	for i, r := range readings {
		index[r] = i
		fmt.Fprintf(w, "\t%d [label=\"%s\"];\n", i, r)
	}

	edges := append([]*core.Edge{}, ls.Graph().Edges()...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	for _, e := range edges {
		fmt.Fprintf(w, "\t%d -> %d;\n", index[e.From], index[e.To])
	}

	fmt.Fprintln(w, "}")
	return nil
}
