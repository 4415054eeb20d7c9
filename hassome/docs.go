// Package hassome provides "holds content" predicates: the exact logical
// negation of the isempty package, function for function.
//
// Filtering for non-empty values normally forces a closure around a negated
// length check. Naming the negation lets the predicate be passed directly:
//
//	vals := []string{"some_data", "", "more data", ""}
//
//	// Without this package:
//	nonEmpty := slices.DeleteFunc(slices.Clone(vals), func(s string) bool {
//		return len(s) == 0
//	})
//
//	// With it:
//	nonEmpty := slices.DeleteFunc(slices.Clone(vals), isempty.String)
//	empties := slices.DeleteFunc(slices.Clone(vals), hassome.String)
//
// Each predicate family comes in three reference arities (value, pointer,
// pointer to pointer) to match the shape the filtering code hands over, and
// any type can opt in by implementing Emptier. For every exported function F
// and every input x, hassome.F(x) == !isempty.F(x); both sides are pure,
// total and safe to call from any number of goroutines.
package hassome
