// Package dict provides an immutable dictionary keyed by structural
// equality. Keys only need an Equal method; no hashing or ordering is
// required, so arbitrary structured values (including types Go cannot
// use as map keys) work as keys. Lookups are linear scans, which is the
// accepted tradeoff for small-to-moderate dictionaries.
//
// Every operation returns a new Dict and never mutates its receiver, so
// values are safe for concurrent use without coordination.
package dict

import (
	"golang.org/x/exp/slices"
)

// Equaler is the capability required of keys: a structural equality
// test. Implementations must be reflexive, symmetric and transitive;
// the dictionary does not detect violations.
type Equaler[K any] interface {
	Equal(K) bool
}

// Entry is a single key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Dict is an ordered, key-unique sequence of entries. Entries are kept
// most-recently-inserted first; inserting an existing key repositions
// it to the front. The zero value is the empty dictionary.
type Dict[K Equaler[K], V any] struct {
	entries []Entry[K, V]
}

// Empty returns a dictionary with no entries.
func Empty[K Equaler[K], V any]() Dict[K, V] {
	return Dict[K, V]{}
}

// Singleton returns a dictionary holding only (k, v).
func Singleton[K Equaler[K], V any](k K, v V) Dict[K, V] {
	return Dict[K, V]{entries: []Entry[K, V]{{Key: k, Value: v}}}
}

func (d Dict[K, V]) index(k K) int {
	return slices.IndexFunc(d.entries, func(e Entry[K, V]) bool {
		return e.Key.Equal(k)
	})
}

// Insert returns a dictionary in which k maps to v. If an entry with an
// equal key already exists it is replaced and repositioned as the most
// recently inserted entry.
func (d Dict[K, V]) Insert(k K, v V) Dict[K, V] {
	out := make([]Entry[K, V], 0, len(d.entries)+1)
	out = append(out, Entry[K, V]{Key: k, Value: v})
	for _, e := range d.entries {
		if !e.Key.Equal(k) {
			out = append(out, e)
		}
	}
	return Dict[K, V]{entries: out}
}

// Remove returns a dictionary without the entry for k. Removing an
// absent key returns an equivalent dictionary.
func (d Dict[K, V]) Remove(k K) Dict[K, V] {
	i := d.index(k)
	if i < 0 {
		return d
	}
	out := make([]Entry[K, V], 0, len(d.entries)-1)
	out = append(out, d.entries[:i]...)
	out = append(out, d.entries[i+1:]...)
	return Dict[K, V]{entries: out}
}

// IsEmpty reports whether the dictionary has no entries.
func (d Dict[K, V]) IsEmpty() bool {
	return len(d.entries) == 0
}

// Member reports whether an entry with a key equal to k exists.
func (d Dict[K, V]) Member(k K) bool {
	return d.index(k) >= 0
}

// Get returns the value associated with k, if any.
func (d Dict[K, V]) Get(k K) (V, bool) {
	i := d.index(k)
	if i < 0 {
		var zero V
		return zero, false
	}
	return d.entries[i].Value, true
}

// Size returns the number of entries.
func (d Dict[K, V]) Size() int {
	return len(d.entries)
}

// Keys returns the keys, most recently inserted first.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the values, most recently inserted first.
func (d Dict[K, V]) Values() []V {
	vals := make([]V, len(d.entries))
	for i, e := range d.entries {
		vals[i] = e.Value
	}
	return vals
}

// Entries returns the entries, most recently inserted first.
func (d Dict[K, V]) Entries() []Entry[K, V] {
	return slices.Clone(d.entries)
}

// Update transforms the entry for k. f receives the current value and
// whether k is present, and returns the value to store and whether to
// keep the key at all. Keeping behaves like Insert, so the entry is
// repositioned as most recent; dropping behaves like Remove.
func (d Dict[K, V]) Update(k K, f func(v V, ok bool) (V, bool)) Dict[K, V] {
	v, ok := d.Get(k)
	w, keep := f(v, ok)
	if keep {
		return d.Insert(k, w)
	}
	return d.Remove(k)
}

// Filter returns the entries satisfying pred, preserving relative order.
func (d Dict[K, V]) Filter(pred func(k K, v V) bool) Dict[K, V] {
	var out []Entry[K, V]
	for _, e := range d.entries {
		if pred(e.Key, e.Value) {
			out = append(out, e)
		}
	}
	return Dict[K, V]{entries: out}
}

// Partition splits the dictionary into the entries satisfying pred and
// those that do not, each preserving relative order.
func (d Dict[K, V]) Partition(pred func(k K, v V) bool) (Dict[K, V], Dict[K, V]) {
	var yes, no []Entry[K, V]
	for _, e := range d.entries {
		if pred(e.Key, e.Value) {
			yes = append(yes, e)
		} else {
			no = append(no, e)
		}
	}
	return Dict[K, V]{entries: yes}, Dict[K, V]{entries: no}
}

// Union returns all entries of d plus the entries of other whose keys
// are absent from d. On a key collision d's entry and position win.
func (d Dict[K, V]) Union(other Dict[K, V]) Dict[K, V] {
	out := make([]Entry[K, V], 0, len(d.entries)+len(other.entries))
	out = append(out, d.entries...)
	for _, e := range other.entries {
		if !d.Member(e.Key) {
			out = append(out, e)
		}
	}
	return Dict[K, V]{entries: out}
}

// Intersect returns the entries of d whose keys are present in other.
// Values and relative order come from d.
func (d Dict[K, V]) Intersect(other Dict[K, V]) Dict[K, V] {
	return d.Filter(func(k K, _ V) bool { return other.Member(k) })
}

// Diff returns the entries of d whose keys are absent from other.
// Values and relative order come from d.
func (d Dict[K, V]) Diff(other Dict[K, V]) Dict[K, V] {
	return d.Filter(func(k K, _ V) bool { return !other.Member(k) })
}

// Equal reports whether two dictionaries hold the same set of key/value
// pairs, regardless of entry order.
func Equal[K Equaler[K], V comparable](d1, d2 Dict[K, V]) bool {
	return EqualFunc(d1, d2, func(a, b V) bool { return a == b })
}

// EqualFunc is Equal with values compared by eq instead of ==.
func EqualFunc[K Equaler[K], V1, V2 any](d1 Dict[K, V1], d2 Dict[K, V2], eq func(V1, V2) bool) bool {
	if len(d1.entries) != len(d2.entries) {
		return false
	}
	// Keys are unique on both sides, so with equal sizes a one-way scan
	// is enough.
	for _, e := range d1.entries {
		w, ok := d2.Get(e.Key)
		if !ok || !eq(e.Value, w) {
			return false
		}
	}
	return true
}
