package lookup

import (
	"bytes"

	"github.com/EmmerichFrog/bt-home-remote/internal/jsontok"
)

// Value is a resolved token span. It borrows from the document it was
// resolved from; call Clone or String to keep it past the document's
// lifetime.
type Value struct {
	raw  []byte
	kind jsontok.Kind
}

func newValue(doc []byte, tok jsontok.Token) Value {
	return Value{raw: tok.Bytes(doc), kind: tok.Kind}
}

// Bytes returns the raw span without copying. String values exclude their
// quotes and keep escape sequences as written.
func (v Value) Bytes() []byte {
	return v.raw
}

// String returns an owned copy of the raw span.
func (v Value) String() string {
	return string(v.raw)
}

// Clone detaches the value from its source document.
func (v Value) Clone() Value {
	return Value{raw: bytes.Clone(v.raw), kind: v.kind}
}

func (v Value) Kind() jsontok.Kind {
	return v.kind
}

func (v Value) Len() int {
	return len(v.raw)
}

// Equal compares raw bytes, ignoring kind.
func (v Value) Equal(s string) bool {
	return string(v.raw) == s
}
