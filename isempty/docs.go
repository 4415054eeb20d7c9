// Package isempty provides emptiness predicates as named functions, so they
// can be passed directly to filtering code instead of writing a closure
// around a length check.
//
// Go has no function reference for "len(s) == 0", which makes filter calls
// noisier than they need to be. This package names that check for the builtin
// text and collection types, and for any type that opts in by implementing
// Emptier, in three reference arities to match common iteration shapes.
//
// Example usage:
//
//	vals := []string{"some_data", "", "more data", ""}
//
//	// Keep only the empties: drop everything with content.
//	empties := slices.DeleteFunc(slices.Clone(vals), hassome.String)
//
//	// Keep only the non-empties: drop the empties.
//	nonEmpties := slices.DeleteFunc(slices.Clone(vals), isempty.String)
//
//	// Pointer-shaped iteration works the same way.
//	ptrs := []*string{&a, &b}
//	nonNilNonEmpty := slices.DeleteFunc(ptrs, isempty.StringPtr)
//
// Every predicate here has an exact negation in the sibling hassome package.
package isempty
