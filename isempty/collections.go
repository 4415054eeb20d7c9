package isempty

import "iter"

// Slice reports whether s has zero length. Both nil and []T{} are empty.
//
// Example:
//
//	isempty.Slice([]int{})      // true
//	isempty.Slice([]int{1, 2})  // false
func Slice[T any](s []T) bool {
	return len(s) == 0
}

// SlicePtr reports whether the slice behind p has zero length.
// A nil pointer counts as empty.
func SlicePtr[T any](p *[]T) bool {
	return p == nil || len(*p) == 0
}

// Map reports whether m has zero entries. Both nil and map[K]V{} are empty.
func Map[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// MapPtr reports whether the map behind p has zero entries.
// A nil pointer counts as empty.
func MapPtr[K comparable, V any](p *map[K]V) bool {
	return p == nil || len(*p) == 0
}

// Seq reports whether seq yields no elements. It pulls at most one element
// and then stops, so it is safe on unbounded iterators. A nil iterator
// yields nothing and counts as empty.
//
// Example:
//
//	isempty.Seq(maps.Keys(m))  // true when m has no entries
func Seq[T any](seq iter.Seq[T]) bool {
	if seq == nil {
		return true
	}

	for range seq {
		return false
	}

	return true
}

// Seq2 reports whether seq yields no pairs. Like Seq, it pulls at most one
// pair and treats a nil iterator as empty.
func Seq2[K, V any](seq iter.Seq2[K, V]) bool {
	if seq == nil {
		return true
	}

	for range seq {
		return false
	}

	return true
}
