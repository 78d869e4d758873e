// Package bitset provides the compressed sparse-bitmap type shared by every
// passage-indexed set in the CBGM pipeline: a genealogical comparison's
// extant/agreements/prior/posterior/norel/unclear/explained sets (compare),
// a witness's potential-ancestor and substemma memberships, and a set-cover
// row's covered/agreements columns (setcover) are all Set values.
//
// It wraps github.com/RoaringBitmap/roaring, the de facto Go implementation
// of the compressed "roaring" bitmap format used as the interchange format
// for genealogical_comparisons blobs, matching the original C++
// implementation's use of roaring.hh for the same purpose. All bitmaps in a
// single process share one universe: the passage count N of the Apparatus
// that produced them.
package bitset

import (
	"bytes"
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Set is a compressed, immutable-by-convention set of non-negative integers
// (passage indices, in this system). The zero value is a valid empty set.
type Set struct {
	bm *roaring.Bitmap
}

// New returns an empty Set.
func New() Set {
	return Set{bm: roaring.New()}
}

// Of returns a Set containing exactly the given values.
func Of(values ...uint32) Set {
	bm := roaring.New()
	bm.AddMany(values)
	return Set{bm: bm}
}

// Range returns a Set containing [lo, hi).
func Range(lo, hi uint64) Set {
	bm := roaring.New()
	bm.AddRange(lo, hi)
	return Set{bm: bm}
}

func (s Set) ensure() *roaring.Bitmap {
	if s.bm == nil {
		return roaring.New()
	}
	return s.bm
}

// Add inserts v into s in place (a nil-backed Set allocates on first
// mutation, so the zero value is safe to use directly). Copies of s that
// share its bitmap see the insertion too.
func (s *Set) Add(v uint32) {
	if s.bm == nil {
		s.bm = roaring.New()
	}
	s.bm.Add(v)
}

// Contains reports whether v is a member of s.
func (s Set) Contains(v uint32) bool {
	return s.bm != nil && s.bm.Contains(v)
}

// Cardinality returns the number of members of s.
func (s Set) Cardinality() int {
	if s.bm == nil {
		return 0
	}
	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return s.Cardinality() == 0
}

// Select returns the rank-th smallest member (0-indexed) and true, or
// (0, false) if rank is out of range.
func (s Set) Select(rank uint32) (uint32, bool) {
	if s.bm == nil {
		return 0, false
	}
	v, err := s.bm.Select(rank)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ToArray returns the sorted members of s as a plain slice.
func (s Set) ToArray() []uint32 {
	if s.bm == nil {
		return nil
	}
	return s.bm.ToArray()
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s.bm == nil {
		return New()
	}
	return Set{bm: s.bm.Clone()}
}

// Or returns the union of s and other.
func (s Set) Or(other Set) Set {
	return Set{bm: roaring.Or(s.ensure(), other.ensure())}
}

// And returns the intersection of s and other.
func (s Set) And(other Set) Set {
	return Set{bm: roaring.And(s.ensure(), other.ensure())}
}

// AndNot returns the members of s that are not in other (set difference).
func (s Set) AndNot(other Set) Set {
	return Set{bm: roaring.AndNot(s.ensure(), other.ensure())}
}

// Xor returns the symmetric difference of s and other.
func (s Set) Xor(other Set) Set {
	return Set{bm: roaring.Xor(s.ensure(), other.ensure())}
}

// IsSubset reports whether every member of s is also a member of other.
func (s Set) IsSubset(other Set) bool {
	return s.ensure().IsSubset(other.ensure())
}

// Equals reports whether s and other contain the same members.
func (s Set) Equals(other Set) bool {
	return s.ensure().Equals(other.ensure())
}

// Intersects reports whether s and other share at least one member.
func (s Set) Intersects(other Set) bool {
	return s.ensure().Intersects(other.ensure())
}

// String renders s as its sorted member list, e.g. "[0 2 5]".
func (s Set) String() string {
	return fmt.Sprintf("%v", s.ToArray())
}

// MarshalBinary serializes s to the portable roaring-bitmap wire format
// used for the genealogical_comparisons blob columns.
func (s Set) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.ensure().WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("bitset: marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary replaces s's contents by reading the roaring wire format
// produced by MarshalBinary.
func (s *Set) UnmarshalBinary(data []byte) error {
	bm := roaring.New()
	if _, err := bm.ReadFrom(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("bitset: unmarshal: %w", err)
	}
	s.bm = bm
	return nil
}
