// Package stemma implements the local-stemma model: a small directed graph
// of reading-to-reading derivation at a single variation passage, together
// with its reachability and cost semantics.
//
// A LocalStemma is built once (NewLocalStemma) and is immutable afterwards;
// its shortest-path queries memoize results internally and are safe to call
// concurrently, which lets a Comparator (package compare) invoke them from a
// worker pool across many witness pairs without external locking.
//
// The graph itself is a *core.Graph (directed, weighted, cycles permitted,
// no self-loops, no parallel edges — construction dedupes and collapses
// before the graph is built) and shortest paths are found with the
// package dijkstra, extended with a hop-count tie-break so that among all
// minimum-weight paths between two readings the canonical one is the one
// with the fewest edges.
package stemma

import (
	"fmt"
	"sync"

	"github.com/jjmccollum/open-cbgm-go/core"
	"github.com/jjmccollum/open-cbgm-go/dijkstra"
)

// Edge is one derivation edge of a local stemma: Prior is read before
// Posterior, at the given non-negative Weight. A zero-weight edge denotes
// trivial (equivalence-level) derivation.
type Edge struct {
	Prior     string
	Posterior string
	Weight    int64
}

// Path describes the canonical path between two readings: Cardinality is
// its edge count, Weight its total weight. Path{0,0} is the (always valid)
// path from a reading to itself.
type Path struct {
	Cardinality int
	Weight      int64
}

// LocalStemma is the directed graph of reading derivation at one variation
// passage, plus its label and a cache of shortest-path queries.
type LocalStemma struct {
	id       string
	label    string
	readings []string // declared order, post-collapse
	graph    *core.Graph

	mu        sync.Mutex
	pathCache map[[2]string]pathEntry

	ancMu     sync.Mutex
	ancestors map[string]map[string]struct{} // reading -> set of ancestors (incl. itself)
}

type pathEntry struct {
	path   Path
	exists bool
}

// NewLocalStemma builds a LocalStemma from a vertex list, an edge list, and
// an optional collapse map (reading -> canonical reading). Construction
// proceeds in this order: (i) apply the collapse map, (ii) merge collapsed
// vertices and redirect edges, (iii) drop self-loops the collapse
// introduces, (iv) deduplicate parallel edges keeping the minimum weight.
func NewLocalStemma(id, label string, readings []string, edges []Edge, collapse map[string]string) (*LocalStemma, error) {
	known := make(map[string]struct{}, len(readings))
	for _, r := range readings {
		known[r] = struct{}{}
	}

	canon := func(r string) (string, error) {
		seen := make(map[string]struct{})
		cur := r
		for {
			next, ok := collapse[cur]
			if !ok {
				return cur, nil
			}
			if _, looped := seen[cur]; looped {
				return "", fmt.Errorf("%w: collapse map cycles at reading %q", ErrMalformedLocalStemma, r)
			}
			seen[cur] = struct{}{}
			cur = next
		}
	}

	// Canonical vertex set: distinct canon(r) for every declared reading.
	canonReadings := make([]string, 0, len(readings))
	seenCanon := make(map[string]struct{}, len(readings))
	for _, r := range readings {
		c, err := canon(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seenCanon[c]; !ok {
			seenCanon[c] = struct{}{}
			canonReadings = append(canonReadings, c)
		}
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, r := range canonReadings {
		if err := g.AddVertex(r); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLocalStemma, err)
		}
	}

	// Redirect edges through the collapse map, drop self-loops it
	// introduces, and keep only the minimum weight per (prior, posterior).
	minWeight := make(map[[2]string]int64)
	order := make([][2]string, 0, len(edges))
	for _, e := range edges {
		if _, ok := known[e.Prior]; !ok {
			return nil, fmt.Errorf("%w: edge references unknown reading %q", ErrMalformedLocalStemma, e.Prior)
		}
		if _, ok := known[e.Posterior]; !ok {
			return nil, fmt.Errorf("%w: edge references unknown reading %q", ErrMalformedLocalStemma, e.Posterior)
		}
		p, err := canon(e.Prior)
		if err != nil {
			return nil, err
		}
		q, err := canon(e.Posterior)
		if err != nil {
			return nil, err
		}
		if p == q {
			continue // self-loop introduced by collapse: drop
		}
		key := [2]string{p, q}
		if w, ok := minWeight[key]; !ok || e.Weight < w {
			if !ok {
				order = append(order, key)
			}
			minWeight[key] = e.Weight
		}
	}
	for _, key := range order {
		if _, err := g.AddEdge(key[0], key[1], minWeight[key]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLocalStemma, err)
		}
	}

	return &LocalStemma{
		id:        id,
		label:     label,
		readings:  canonReadings,
		graph:     g,
		pathCache: make(map[[2]string]pathEntry),
		ancestors: make(map[string]map[string]struct{}),
	}, nil
}

// ID returns the variation-unit ID this local stemma belongs to.
func (ls *LocalStemma) ID() string { return ls.id }

// Label returns the human-readable label for this local stemma.
func (ls *LocalStemma) Label() string { return ls.label }

// Readings returns the (post-collapse) reading IDs, in declaration order.
func (ls *LocalStemma) Readings() []string {
	out := make([]string, len(ls.readings))
	copy(out, ls.readings)
	return out
}

// Graph exposes the underlying directed graph, primarily for DOT rendering.
func (ls *LocalStemma) Graph() *core.Graph { return ls.graph }

func (ls *LocalStemma) hasReading(r string) bool {
	return ls.graph.HasVertex(r)
}

// PathExists reports whether a directed path from r1 to r2 exists.
func (ls *LocalStemma) PathExists(r1, r2 string) (bool, error) {
	_, ok, err := ls.Path(r1, r2)
	return ok, err
}

// Path returns the canonical (minimum-weight, tie-broken by minimum
// cardinality) path from r1 to r2, or ok=false if no directed path exists.
// Path(r, r) always returns ({0, 0}, true, nil).
func (ls *LocalStemma) Path(r1, r2 string) (Path, bool, error) {
	if !ls.hasReading(r1) {
		return Path{}, false, fmt.Errorf("%w: %q", ErrUnknownReading, r1)
	}
	if !ls.hasReading(r2) {
		return Path{}, false, fmt.Errorf("%w: %q", ErrUnknownReading, r2)
	}
	if r1 == r2 {
		return Path{0, 0}, true, nil
	}

	key := [2]string{r1, r2}
	ls.mu.Lock()
	if cached, ok := ls.pathCache[key]; ok {
		ls.mu.Unlock()
		return cached.path, cached.exists, nil
	}
	ls.mu.Unlock()

	dist, hops, _, err := dijkstra.ShortestPathWithHops(ls.graph,
		dijkstra.Source(r1), dijkstra.WithTieBreakByHops())
	if err != nil {
		return Path{}, false, fmt.Errorf("stemma: path(%q,%q): %w", r1, r2, err)
	}

	d, reached := dist[r2]
	entry := pathEntry{}
	if reached && d < noPathSentinel {
		entry.exists = true
		entry.path = Path{Cardinality: hops[r2], Weight: d}
	}

	ls.mu.Lock()
	ls.pathCache[key] = entry
	ls.mu.Unlock()

	return entry.path, entry.exists, nil
}

// noPathSentinel mirrors dijkstra's "unreachable" distance (math.MaxInt64);
// duplicated here (rather than importing math in a hot comparison) keeps the
// reachability check obviously local to this one comparison.
const noPathSentinel = 1<<63 - 1

// CommonAncestorExists reports whether r1 and r2 share a common ancestor
// reading: a reading x (possibly r1 or r2 itself) with a directed path to
// both. Readings inside the same cycle are mutually reachable and so are
// trivially their own common ancestors; plain reverse reachability already
// gives the right answer for cyclic local stemmata without a separate
// strongly-connected-component condensation step.
func (ls *LocalStemma) CommonAncestorExists(r1, r2 string) (bool, error) {
	a1, err := ls.ancestorSet(r1)
	if err != nil {
		return false, err
	}
	a2, err := ls.ancestorSet(r2)
	if err != nil {
		return false, err
	}
	for x := range a1 {
		if _, ok := a2[x]; ok {
			return true, nil
		}
	}
	return false, nil
}

// ancestorSet returns the set of readings (including r) with a directed path
// to r, computed by depth-first search over reversed edges and memoized.
func (ls *LocalStemma) ancestorSet(r string) (map[string]struct{}, error) {
	if !ls.hasReading(r) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReading, r)
	}

	ls.ancMu.Lock()
	if cached, ok := ls.ancestors[r]; ok {
		ls.ancMu.Unlock()
		return cached, nil
	}
	ls.ancMu.Unlock()

	reverse := make(map[string][]string)
	for _, e := range ls.graph.Edges() {
		reverse[e.To] = append(reverse[e.To], e.From)
	}

	visited := map[string]struct{}{r: {}}
	stack := []string{r}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		for _, pred := range reverse[cur] {
			if _, ok := visited[pred]; !ok {
				visited[pred] = struct{}{}
				stack = append(stack, pred)
			}
		}
	}

	ls.ancMu.Lock()
	ls.ancestors[r] = visited
	ls.ancMu.Unlock()
	return visited, nil
}
