package isempty

// Emptier is implemented by any type that can report whether it holds no
// logical content. Types outside this module opt in by defining the method;
// there is no structural fallback to other emptiness-like methods.
//
// Example:
//
//	type Basket struct{ items []string }
//
//	func (b Basket) IsEmpty() bool { return len(b.items) == 0 }
//
//	isempty.Value(Basket{})  // true
type Emptier interface {
	IsEmpty() bool
}

// Value reports whether v holds no content, by calling its IsEmpty method.
//
// Example:
//
//	isempty.Value(Basket{})                           // true
//	isempty.Value(Basket{items: []string{"apple"}})   // false
func Value[T Emptier](v T) bool {
	return v.IsEmpty()
}

// Ptr reports whether the value behind p holds no content.
// A nil pointer holds no content, so Ptr(nil) is true.
//
// The signature matches filtering a sequence of references:
//
//	baskets = slices.DeleteFunc(baskets, isempty.Ptr[Basket])
func Ptr[T Emptier](p *T) bool {
	if p == nil {
		return true
	}

	return (*p).IsEmpty()
}

// PtrPtr is the double-reference form of Ptr, for filtering a sequence whose
// elements are themselves pointers, iterated by reference. A nil pointer at
// either level counts as empty.
func PtrPtr[T Emptier](p **T) bool {
	if p == nil {
		return true
	}

	return Ptr(*p)
}
