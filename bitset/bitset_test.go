package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jjmccollum/open-cbgm-go/bitset"
)

func TestBasicMembership(t *testing.T) {
	s := bitset.Of(1, 3, 5)
	require.True(t, s.Contains(3))
	require.False(t, s.Contains(4))
	require.Equal(t, 3, s.Cardinality())
	require.Equal(t, []uint32{1, 3, 5}, s.ToArray())
}

func TestSetAlgebra(t *testing.T) {
	a := bitset.Of(0, 1, 2, 3)
	b := bitset.Of(2, 3, 4, 5)

	require.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, a.Or(b).ToArray())
	require.Equal(t, []uint32{2, 3}, a.And(b).ToArray())
	require.Equal(t, []uint32{0, 1}, a.AndNot(b).ToArray())
	require.Equal(t, []uint32{0, 1, 4, 5}, a.Xor(b).ToArray())
	require.True(t, a.Intersects(b))
	require.True(t, bitset.Of(2, 3).IsSubset(a))
	require.False(t, a.IsSubset(bitset.Of(2, 3)))
}

func TestZeroValueIsUsableEmptySet(t *testing.T) {
	var s bitset.Set
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Cardinality())
	s.Add(7)
	require.True(t, s.Contains(7))
}

func TestSelect(t *testing.T) {
	s := bitset.Of(10, 20, 30)
	v, ok := s.Select(1)
	require.True(t, ok)
	require.Equal(t, uint32(20), v)

	_, ok = s.Select(5)
	require.False(t, ok)
}

func TestRoundTripBinary(t *testing.T) {
	s := bitset.Of(1, 4, 9, 16, 25)
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var out bitset.Set
	require.NoError(t, out.UnmarshalBinary(data))
	require.True(t, s.Equals(out))
}

func TestEquals(t *testing.T) {
	require.True(t, bitset.Of(1, 2).Equals(bitset.Of(2, 1)))
	require.False(t, bitset.Of(1, 2).Equals(bitset.Of(1, 2, 3)))
}
