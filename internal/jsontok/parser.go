package jsontok

import (
	"bytes"

	"github.com/EmmerichFrog/bt-home-remote/internal/stack"
)

type options struct {
	strict bool
}

// Option configures a single Parse call.
type Option func(*options)

// WithStrict requires primitives to start like a number, true, false or null,
// forbids primitives and containers as object keys, and treats a primitive
// that runs into the end of input as incomplete.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// parser holds the state of one Parse call.
type parser struct {
	data   []byte
	pos    int
	pool   *Pool
	strict bool

	// super is the token new values attach to: an open container, or a key
	// string right after its colon. -1 when nothing is open.
	super int
	open  *stack.Stack[int]
	count int
}

// Count reports how many tokens data needs without allocating any. It only
// scans strings and primitives; bracket matching is left to Parse.
func Count(data []byte, opts ...Option) (int, error) {
	return Parse(data, nil, opts...)
}

// Parse tokenizes data into pool and returns the number of tokens produced.
// The pool is reset first, so after a successful call pool.Len() equals the
// returned count. A nil pool performs a dry run, see Count. Input ends at len(data) or at the
// first NUL byte, whichever comes first.
//
// Errors wrap ErrNoMemory, ErrInvalid or ErrPartial in a *SyntaxError.
func Parse(data []byte, pool *Pool, opts ...Option) (int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	p := &parser{
		data:   data,
		pool:   pool,
		strict: o.strict,
		super:  -1,
	}
	if pool != nil {
		pool.Reset()
		// Every open container holds a pool slot, so the pool capacity bounds
		// the nesting depth.
		p.open = stack.NewBounded[int](pool.Cap())
	}

	return p.run()
}

func (p *parser) run() (int, error) {
	for ; p.pos < len(p.data); p.pos++ {
		c := p.data[p.pos]

		switch c {
		case '{', '[':
			p.count++
			if p.pool == nil {
				break
			}
			if err := p.openContainer(c); err != nil {
				return 0, err
			}
		case '}', ']':
			if p.pool == nil {
				break
			}
			if err := p.closeContainer(c); err != nil {
				return 0, err
			}
		case '"':
			if err := p.scanString(); err != nil {
				return 0, err
			}
			p.count++
			p.attach()
		case '\t', '\r', '\n', ' ':
		case ':':
			if p.pool != nil {
				p.super = p.pool.Len() - 1
			}
		case ',':
			if p.pool != nil && p.super != -1 && !p.pool.tokens[p.super].Kind.IsContainer() {
				p.super = p.enclosing()
			}
		default:
			if p.strict {
				if err := p.checkStrictPrimitive(c); err != nil {
					return 0, err
				}
			}
			if err := p.scanPrimitive(); err != nil {
				return 0, err
			}
			p.count++
			p.attach()
		}
	}

	if p.pool != nil {
		if index, ok := p.open.Peek(); ok {
			return 0, errorAt(p.pool.tokens[index].Start, ErrPartial)
		}
	}

	return p.count, nil
}

func (p *parser) openContainer(c byte) error {
	index, ok := p.pool.alloc()
	if !ok {
		return errorAt(p.pos, ErrNoMemory)
	}

	if p.super != -1 {
		parent := &p.pool.tokens[p.super]
		if p.strict && parent.Kind == Object {
			return errorAt(p.pos, ErrInvalid)
		}
		parent.Size++
	}

	tok := &p.pool.tokens[index]
	tok.Kind = Array
	if c == '{' {
		tok.Kind = Object
	}
	tok.Start = p.pos
	tok.Parent = p.super

	if !p.open.Push(index) {
		return errorAt(p.pos, ErrNoMemory)
	}
	p.super = index
	return nil
}

func (p *parser) closeContainer(c byte) error {
	kind := Array
	if c == '}' {
		kind = Object
	}

	index, ok := p.open.Pop()
	if !ok {
		return errorAt(p.pos, ErrInvalid)
	}

	tok := &p.pool.tokens[index]
	if tok.Kind != kind {
		return errorAt(p.pos, ErrInvalid)
	}
	tok.End = p.pos + 1

	p.super = p.enclosing()
	return nil
}

// enclosing returns the innermost open container, or -1.
func (p *parser) enclosing() int {
	index, ok := p.open.Peek()
	if !ok {
		return -1
	}
	return index
}

// attach counts the token just scanned as a child of the current container.
func (p *parser) attach() {
	if p.pool != nil && p.super != -1 {
		p.pool.tokens[p.super].Size++
	}
}

func (p *parser) checkStrictPrimitive(c byte) error {
	if !isStrictPrimitiveStart(c) {
		return errorAt(p.pos, ErrInvalid)
	}
	if p.pool == nil || p.super == -1 {
		return nil
	}

	// A primitive may be a value but never a key.
	parent := p.pool.tokens[p.super]
	if parent.Kind == Object || parent.Kind == String && parent.Size != 0 {
		return errorAt(p.pos, ErrInvalid)
	}
	return nil
}

func (p *parser) fill(index int, kind Kind, start, end int) {
	p.pool.tokens[index] = Token{
		Kind:   kind,
		Start:  start,
		End:    end,
		Parent: p.super,
	}
}
