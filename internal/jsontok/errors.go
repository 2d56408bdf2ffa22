package jsontok

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMemory indicates the token pool ran out of slots. Retrying with a
	// larger pool can succeed.
	ErrNoMemory = errors.New("jsontok: not enough tokens")

	// ErrInvalid indicates a structural error: mismatched brackets, a bad
	// escape sequence or a non-printable byte in a primitive.
	ErrInvalid = errors.New("jsontok: invalid character")

	// ErrPartial indicates the input ended inside a string or container.
	ErrPartial = errors.New("jsontok: incomplete document")
)

// SyntaxError carries the byte offset at which parsing stopped.
type SyntaxError struct {
	Pos int
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func errorAt(pos int, err error) error {
	return &SyntaxError{Pos: pos, Err: err}
}
