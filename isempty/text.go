package isempty

// String reports whether s has zero length.
//
// Example:
//
//	empties := slices.DeleteFunc(vals, hassome.String)  // keep ""
//	nonEmpty := slices.DeleteFunc(vals, isempty.String) // drop ""
func String(s string) bool {
	return len(s) == 0
}

// StringPtr reports whether the string behind p has zero length.
// A nil pointer counts as empty.
func StringPtr(p *string) bool {
	return p == nil || len(*p) == 0
}

// StringPtrPtr is the double-reference form of StringPtr.
// A nil pointer at either level counts as empty.
func StringPtrPtr(p **string) bool {
	return p == nil || StringPtr(*p)
}

// Bytes reports whether b has zero length. Both nil and []byte{} are empty.
func Bytes(b []byte) bool {
	return len(b) == 0
}

// BytesPtr reports whether the byte slice behind p has zero length.
// A nil pointer counts as empty.
func BytesPtr(p *[]byte) bool {
	return p == nil || len(*p) == 0
}

// BytesPtrPtr is the double-reference form of BytesPtr.
// A nil pointer at either level counts as empty.
func BytesPtrPtr(p **[]byte) bool {
	return p == nil || BytesPtr(*p)
}
