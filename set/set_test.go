package set

import (
	"testing"

	"github.com/erlandsona/assoc-set/dict"
	"github.com/stretchr/testify/require"
)

func fromInts(xs ...int) Set[dict.Comparable[int]] {
	ks := make([]dict.Comparable[int], len(xs))
	for i, x := range xs {
		ks[i] = dict.Of(x)
	}
	return FromList(ks)
}

func toInts(s Set[dict.Comparable[int]]) []int {
	ks := s.ToList()
	xs := make([]int, len(ks))
	for i, k := range ks {
		xs[i] = k.V
	}
	return xs
}

func TestInsertUniqueness(t *testing.T) {
	s := fromInts(1, 2)
	once := s.Insert(dict.Of(3))
	twice := once.Insert(dict.Of(3))
	require.Equal(t, once.Size(), twice.Size())
	require.True(t, once.Equal(twice))
}

func TestMemberAfterInsertRemove(t *testing.T) {
	s := fromInts(1, 2, 3)
	require.True(t, s.Insert(dict.Of(9)).Member(dict.Of(9)))
	require.False(t, s.Remove(dict.Of(2)).Member(dict.Of(2)))
	// Neither touched the original.
	require.False(t, s.Member(dict.Of(9)))
	require.True(t, s.Member(dict.Of(2)))
}

func TestRemoveAbsent(t *testing.T) {
	s := fromInts(1, 2)
	require.True(t, s.Equal(s.Remove(dict.Of(5))))
}

func TestEmptyAndSingleton(t *testing.T) {
	require.True(t, Empty[dict.Comparable[int]]().IsEmpty())
	one := Singleton(dict.Of(7))
	require.False(t, one.IsEmpty())
	require.Equal(t, 1, one.Size())
	require.True(t, one.Member(dict.Of(7)))
}

func TestEqualIgnoresOrder(t *testing.T) {
	s := fromInts(4, 8, 15, 16, 23, 42)
	rev := s.ToList()
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	require.True(t, s.Equal(FromList(rev)))
}

func TestUnionIdentity(t *testing.T) {
	s := fromInts(1, 2, 3)
	require.True(t, s.Union(Empty[dict.Comparable[int]]()).Equal(s))
	require.True(t, Empty[dict.Comparable[int]]().Union(s).Equal(s))
}

func TestIntersectDiffComplement(t *testing.T) {
	s1 := fromInts(1, 2, 3, 4, 5)
	s2 := fromInts(4, 5, 6, 7)
	in := s1.Intersect(s2)
	out := s1.Diff(s2)
	require.Equal(t, s1.Size(), in.Size()+out.Size())
	for _, k := range s1.ToList() {
		require.NotEqual(t, in.Member(k), out.Member(k))
	}
}

func TestRoundTrip(t *testing.T) {
	s := fromInts(3, 1, 4, 1, 5, 9, 2, 6)
	require.True(t, FromList(s.ToList()).Equal(s))
}

func TestIdempotence(t *testing.T) {
	s := fromInts(1, 2, 3)
	require.True(t, s.Union(s).Equal(s))
	require.True(t, s.Intersect(s).Equal(s))
	require.Equal(t, 0, s.Diff(s).Size())
}

func TestFromListDuplicateOrder(t *testing.T) {
	s := fromInts(3, 1, 2, 3)
	require.Equal(t, 3, s.Size())
	require.Equal(t, []int{3, 1, 2}, toInts(s))
}

func TestFilterScenario(t *testing.T) {
	s := fromInts(-2, -1, 0, 1, 2)
	pos := s.Filter(func(k dict.Comparable[int]) bool { return k.V > 0 })
	require.True(t, pos.Equal(fromInts(1, 2)))
}

func TestUnionScenario(t *testing.T) {
	u := fromInts(1, 2).Union(fromInts(2, 3))
	require.Equal(t, 3, u.Size())
	require.True(t, u.Equal(fromInts(1, 2, 3)))
}

func TestUnionKeepsLeftPosition(t *testing.T) {
	u := fromInts(1, 2).Union(fromInts(2, 3))
	// Left operand's order leads; right's leftovers follow.
	require.Equal(t, []int{1, 2, 3}, toInts(u))
}

func TestPartition(t *testing.T) {
	s := fromInts(1, 2, 3, 4, 5)
	even, odd := s.Partition(func(k dict.Comparable[int]) bool { return k.V%2 == 0 })
	require.True(t, even.Equal(fromInts(2, 4)))
	require.True(t, odd.Equal(fromInts(1, 3, 5)))
	require.Equal(t, s.Size(), even.Size()+odd.Size())
}
