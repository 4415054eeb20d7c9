package hassome

import (
	"iter"

	"github.com/amp-labs/has-some/isempty"
)

// Slice reports whether s has at least one element.
//
// Example:
//
//	hassome.Slice([]int{})      // false
//	hassome.Slice([]int{1, 2})  // true
func Slice[T any](s []T) bool {
	return !isempty.Slice(s)
}

// SlicePtr reports whether the slice behind p has at least one element.
// A nil pointer holds nothing.
func SlicePtr[T any](p *[]T) bool {
	return !isempty.SlicePtr(p)
}

// Map reports whether m has at least one entry.
func Map[K comparable, V any](m map[K]V) bool {
	return !isempty.Map(m)
}

// MapPtr reports whether the map behind p has at least one entry.
// A nil pointer holds nothing.
func MapPtr[K comparable, V any](p *map[K]V) bool {
	return !isempty.MapPtr(p)
}

// Seq reports whether seq yields at least one element. It pulls at most one
// element and then stops, so it is safe on unbounded iterators. A nil
// iterator yields nothing.
//
// Example:
//
//	hassome.Seq(maps.Keys(m))  // true when m has entries
func Seq[T any](seq iter.Seq[T]) bool {
	return !isempty.Seq(seq)
}

// Seq2 reports whether seq yields at least one pair.
func Seq2[K, V any](seq iter.Seq2[K, V]) bool {
	return !isempty.Seq2(seq)
}
