package setcover

import "github.com/jjmccollum/open-cbgm-go/bitset"

// orTree is a binary tree of bitwise-ORs over a slice of row bitmaps,
// built bottom-up so that each internal node's bitmap is the union of its
// two children's. It supports the unique-coverage walk: for a target
// column, descend into whichever child contains it; if both children
// contain it the column is covered by more than one row and the walk stops
// early.
type orTree struct {
	lo, hi      int // [lo,hi) row-index range this node spans
	bm          bitset.Set
	left, right *orTree
}

func buildOrTree(bitmaps []bitset.Set, lo, hi int) *orTree {
	if hi-lo == 1 {
		return &orTree{lo: lo, hi: hi, bm: bitmaps[lo]}
	}
	mid := lo + (hi-lo)/2
	left := buildOrTree(bitmaps, lo, mid)
	right := buildOrTree(bitmaps, mid, hi)
	return &orTree{lo: lo, hi: hi, bm: left.bm.Or(right.bm), left: left, right: right}
}

// uniqueRowFor returns the row index that is the sole coverer of col among
// this node's span, or (-1, false) if no row in the span covers col or
// more than one does.
func (n *orTree) uniqueRowFor(col uint32) (int, bool) {
	if !n.bm.Contains(col) {
		return -1, false
	}
	if n.left == nil { // leaf
		return n.lo, true
	}
	leftHas := n.left.bm.Contains(col)
	rightHas := n.right.bm.Contains(col)
	if leftHas && rightHas {
		return -1, false
	}
	if leftHas {
		return n.left.uniqueRowFor(col)
	}
	return n.right.uniqueRowFor(col)
}
