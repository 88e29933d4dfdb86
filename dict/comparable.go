package dict

// Comparable adapts any comparable type to the Equaler capability, so
// plain ints, strings and the like can be used as keys without writing
// a wrapper type each time.
type Comparable[T comparable] struct {
	V T
}

// Of wraps v as a Comparable key.
func Of[T comparable](v T) Comparable[T] {
	return Comparable[T]{V: v}
}

func (c Comparable[T]) Equal(o Comparable[T]) bool {
	return c.V == o.V
}
