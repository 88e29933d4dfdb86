// Package set provides an immutable set over values whose only required
// capability is structural equality. It is a thin projection of
// dict.Dict with the value fixed to Unit: every operation delegates to
// exactly one dictionary operation, so ordering and complexity are
// inherited unchanged.
package set

import (
	"github.com/erlandsona/assoc-set/dict"
)

// Unit is the empty payload stored against every element. It carries no
// information beyond presence.
type Unit struct{}

// Set is an insertion-ordered set of unique elements compared by their
// Equal method. The zero value is the empty set.
type Set[K dict.Equaler[K]] struct {
	d dict.Dict[K, Unit]
}

// Empty returns a set with no elements.
func Empty[K dict.Equaler[K]]() Set[K] {
	return Set[K]{}
}

// Singleton returns a set holding only k.
func Singleton[K dict.Equaler[K]](k K) Set[K] {
	return Set[K]{d: dict.Singleton(k, Unit{})}
}

// Insert returns a set containing k. If an equal element already exists
// it is repositioned as the most recently inserted.
func (s Set[K]) Insert(k K) Set[K] {
	return Set[K]{d: s.d.Insert(k, Unit{})}
}

// Remove returns a set without k. Removing an absent element returns an
// equivalent set.
func (s Set[K]) Remove(k K) Set[K] {
	return Set[K]{d: s.d.Remove(k)}
}

// IsEmpty reports whether the set has no elements.
func (s Set[K]) IsEmpty() bool {
	return s.d.IsEmpty()
}

// Member reports whether an element equal to k is present.
func (s Set[K]) Member(k K) bool {
	return s.d.Member(k)
}

// Size returns the number of elements.
func (s Set[K]) Size() int {
	return s.d.Size()
}

// Equal reports whether two sets hold the same elements, regardless of
// insertion order.
func (s Set[K]) Equal(other Set[K]) bool {
	return dict.Equal(s.d, other.d)
}

// Union returns all elements of s plus the elements of other absent
// from s. Colliding elements keep s's position.
func (s Set[K]) Union(other Set[K]) Set[K] {
	return Set[K]{d: s.d.Union(other.d)}
}

// Intersect returns the elements of s present in other, in s's order.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	return Set[K]{d: s.d.Intersect(other.d)}
}

// Diff returns the elements of s absent from other, in s's order.
func (s Set[K]) Diff(other Set[K]) Set[K] {
	return Set[K]{d: s.d.Diff(other.d)}
}

// ToList returns the elements, most recently inserted first.
func (s Set[K]) ToList() []K {
	return s.d.Keys()
}

// FromList builds a set by inserting elements from right to left.
// Duplicates collapse to a single element; because insertion proceeds
// right to left, each duplicate reinsertion repositions the element, so
// FromList([3,1,2,3]).ToList() is [3,1,2]. This fold direction is part
// of the observable ordering contract.
func FromList[K dict.Equaler[K]](list []K) Set[K] {
	s := Set[K]{}
	for i := len(list) - 1; i >= 0; i-- {
		s = s.Insert(list[i])
	}
	return s
}

// Filter returns the elements satisfying pred, preserving relative
// order.
func (s Set[K]) Filter(pred func(K) bool) Set[K] {
	return Set[K]{d: s.d.Filter(func(k K, _ Unit) bool { return pred(k) })}
}

// Partition splits the set into the elements satisfying pred and those
// that do not, each preserving relative order.
func (s Set[K]) Partition(pred func(K) bool) (Set[K], Set[K]) {
	yes, no := s.d.Partition(func(k K, _ Unit) bool { return pred(k) })
	return Set[K]{d: yes}, Set[K]{d: no}
}
