package isempty_test

import (
	"testing"

	"github.com/amp-labs/has-some/isempty"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty string", input: "", want: true},
		{name: "non-empty string", input: "non-empty", want: false},
		{name: "whitespace is content", input: " ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, isempty.String(tt.input))
		})
	}
}

func TestStringPtr(t *testing.T) {
	t.Parallel()

	empty := ""
	full := "non-empty"

	assert.True(t, isempty.StringPtr(&empty))
	assert.False(t, isempty.StringPtr(&full))
	assert.True(t, isempty.StringPtr(nil))
}

func TestStringPtrPtr(t *testing.T) {
	t.Parallel()

	empty := ""
	full := "non-empty"

	emptyPtr := &empty
	fullPtr := &full

	var nilPtr *string

	assert.True(t, isempty.StringPtrPtr(&emptyPtr))
	assert.False(t, isempty.StringPtrPtr(&fullPtr))
	assert.True(t, isempty.StringPtrPtr(&nilPtr))
	assert.True(t, isempty.StringPtrPtr(nil))
}

func TestBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  bool
	}{
		{name: "nil slice", input: nil, want: true},
		{name: "empty slice", input: []byte{}, want: true},
		{name: "non-empty slice", input: []byte("data"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, isempty.Bytes(tt.input))
		})
	}
}

func TestBytesPtr(t *testing.T) {
	t.Parallel()

	empty := []byte{}
	full := []byte("data")

	assert.True(t, isempty.BytesPtr(&empty))
	assert.False(t, isempty.BytesPtr(&full))
	assert.True(t, isempty.BytesPtr(nil))
}

func TestBytesPtrPtr(t *testing.T) {
	t.Parallel()

	empty := []byte{}
	full := []byte("data")

	emptyPtr := &empty
	fullPtr := &full

	var nilPtr *[]byte

	assert.True(t, isempty.BytesPtrPtr(&emptyPtr))
	assert.False(t, isempty.BytesPtrPtr(&fullPtr))
	assert.True(t, isempty.BytesPtrPtr(&nilPtr))
	assert.True(t, isempty.BytesPtrPtr(nil))
}
