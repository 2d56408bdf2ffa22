package jsontok

// Kind classifies a token.
type Kind uint8

const (
	Undefined Kind = iota
	Object
	Array
	String
	Primitive
)

func (k Kind) String() string {
	switch k {
	case Object:
		return "object"
	case Array:
		return "array"
	case String:
		return "string"
	case Primitive:
		return "primitive"
	default:
		return "undefined"
	}
}

// IsContainer reports whether tokens of this kind can have children.
func (k Kind) IsContainer() bool {
	return k == Object || k == Array
}

// Unset marks a token offset that has not been assigned yet.
const Unset = -1

// Token is a half-open byte range [Start, End) of the parsed buffer.
//
// Size counts immediate children only: key/value pairs for an Object,
// elements for an Array, and 0 or 1 for a String used as an object key
// (1 once the key has a value). Parent is the index of the enclosing token,
// or -1 for the root.
type Token struct {
	Kind   Kind
	Start  int
	End    int
	Size   int
	Parent int
}

// IsOpen reports whether the token was started but never closed.
func (t Token) IsOpen() bool {
	return t.Start != Unset && t.End == Unset
}

func (t Token) Len() int {
	if t.IsOpen() || t.Start == Unset {
		return 0
	}
	return t.End - t.Start
}

// Bytes returns the token's span of data without copying. String spans
// exclude the quotes and are not unescaped.
func (t Token) Bytes(data []byte) []byte {
	if t.Start == Unset || t.End == Unset || t.End > len(data) {
		return nil
	}
	return data[t.Start:t.End:t.End]
}
