package hassome

import "github.com/amp-labs/has-some/isempty"

// Emptier is the opt-in capability shared with the isempty package: a type
// joins both packages at once by defining IsEmpty() bool.
type Emptier = isempty.Emptier

// Value reports whether v holds content: the negation of isempty.Value.
//
// Example:
//
//	hassome.Value(Basket{})                          // false
//	hassome.Value(Basket{items: []string{"apple"}})  // true
func Value[T Emptier](v T) bool {
	return !isempty.Value(v)
}

// Ptr reports whether the value behind p holds content.
// A nil pointer holds nothing, so Ptr(nil) is false.
//
// The signature matches filtering a sequence of references:
//
//	empties := slices.DeleteFunc(baskets, hassome.Ptr[Basket])
func Ptr[T Emptier](p *T) bool {
	return !isempty.Ptr(p)
}

// PtrPtr is the double-reference form of Ptr, for filtering a sequence whose
// elements are themselves pointers, iterated by reference. A nil pointer at
// either level holds nothing.
func PtrPtr[T Emptier](p **T) bool {
	return !isempty.PtrPtr(p)
}
