package set

import (
	"github.com/erlandsona/assoc-set/dict"
)

// Foldl folds fn over the elements from most recently inserted to least
// recently inserted.
func Foldl[K dict.Equaler[K], A any](fn func(k K, acc A) A, acc A, s Set[K]) A {
	return dict.Foldl(func(k K, _ Unit, a A) A { return fn(k, a) }, acc, s.d)
}

// Foldr folds fn over the elements from least recently inserted to most
// recently inserted.
func Foldr[K dict.Equaler[K], A any](fn func(k K, acc A) A, acc A, s Set[K]) A {
	return dict.Foldr(func(k K, _ Unit, a A) A { return fn(k, a) }, acc, s.d)
}

// Map returns the set of images f(x) for every element of s. The images
// are accumulated by prepending in Foldl order and the result is built
// with FromList, so when f maps distinct elements to equal images the
// surviving position follows FromList's last-occurrence rule. Callers
// that care about the order of such collapsed images should treat it as
// historical behavior, not a guarantee.
func Map[A dict.Equaler[A], B dict.Equaler[B]](f func(A) B, s Set[A]) Set[B] {
	images := Foldl(func(k A, acc []B) []B {
		return append([]B{f(k)}, acc...)
	}, []B(nil), s)
	return FromList(images)
}
