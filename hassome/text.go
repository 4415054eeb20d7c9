package hassome

import "github.com/amp-labs/has-some/isempty"

// String reports whether s has content.
//
// Example:
//
//	nonEmpty := slices.DeleteFunc(vals, isempty.String) // keep content
//	empties := slices.DeleteFunc(vals, hassome.String)  // keep ""
func String(s string) bool {
	return !isempty.String(s)
}

// StringPtr reports whether the string behind p has content.
// A nil pointer holds nothing.
func StringPtr(p *string) bool {
	return !isempty.StringPtr(p)
}

// StringPtrPtr is the double-reference form of StringPtr.
func StringPtrPtr(p **string) bool {
	return !isempty.StringPtrPtr(p)
}

// Bytes reports whether b has content.
func Bytes(b []byte) bool {
	return !isempty.Bytes(b)
}

// BytesPtr reports whether the byte slice behind p has content.
// A nil pointer holds nothing.
func BytesPtr(p *[]byte) bool {
	return !isempty.BytesPtr(p)
}

// BytesPtrPtr is the double-reference form of BytesPtr.
func BytesPtrPtr(p **[]byte) bool {
	return !isempty.BytesPtrPtr(p)
}
