package dict

// The traversals live at package level because the accumulator and
// image types need their own type parameters, which Go methods cannot
// declare.

// Foldl folds fn over the entries from most recently inserted to least
// recently inserted.
func Foldl[K Equaler[K], V, A any](fn func(k K, v V, acc A) A, acc A, d Dict[K, V]) A {
	for _, e := range d.entries {
		acc = fn(e.Key, e.Value, acc)
	}
	return acc
}

// Foldr folds fn over the entries from least recently inserted to most
// recently inserted.
func Foldr[K Equaler[K], V, A any](fn func(k K, v V, acc A) A, acc A, d Dict[K, V]) A {
	for i := len(d.entries) - 1; i >= 0; i-- {
		e := d.entries[i]
		acc = fn(e.Key, e.Value, acc)
	}
	return acc
}

// Map transforms every value with f, preserving keys and order.
func Map[K Equaler[K], A, B any](f func(k K, v A) B, d Dict[K, A]) Dict[K, B] {
	out := make([]Entry[K, B], len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry[K, B]{Key: e.Key, Value: f(e.Key, e.Value)}
	}
	return Dict[K, B]{entries: out}
}

// FromList builds a dictionary by inserting entries from right to left,
// so for duplicate keys the leftmost entry is inserted last and wins
// both value and most-recent position.
func FromList[K Equaler[K], V any](entries []Entry[K, V]) Dict[K, V] {
	d := Dict[K, V]{}
	for i := len(entries) - 1; i >= 0; i-- {
		d = d.Insert(entries[i].Key, entries[i].Value)
	}
	return d
}

// Merge folds over two dictionaries at once: left is applied to entries
// only in d1, both to keys present in both, and right to entries only
// in d2. d1's entries are visited least recent first, then d2's
// unmatched entries least recent first.
func Merge[K Equaler[K], A, B, R any](
	left func(k K, a A, acc R) R,
	both func(k K, a A, b B, acc R) R,
	right func(k K, b B, acc R) R,
	d1 Dict[K, A],
	d2 Dict[K, B],
	acc R,
) R {
	for i := len(d1.entries) - 1; i >= 0; i-- {
		e := d1.entries[i]
		if b, ok := d2.Get(e.Key); ok {
			acc = both(e.Key, e.Value, b, acc)
		} else {
			acc = left(e.Key, e.Value, acc)
		}
	}
	for i := len(d2.entries) - 1; i >= 0; i-- {
		e := d2.entries[i]
		if !d1.Member(e.Key) {
			acc = right(e.Key, e.Value, acc)
		}
	}
	return acc
}
