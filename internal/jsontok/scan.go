package jsontok

// scanString consumes a string literal starting at the opening quote. On
// success p.pos rests on the closing quote.
func (p *parser) scanString() error {
	start := p.pos
	p.pos++

	for ; p.pos < len(p.data); p.pos++ {
		c := p.data[p.pos]

		if c == '"' {
			if p.pool == nil {
				return nil
			}
			index, ok := p.pool.alloc()
			if !ok {
				return errorAt(start, ErrNoMemory)
			}
			p.fill(index, String, start+1, p.pos)
			return nil
		}

		if c != '\\' || p.pos+1 >= len(p.data) {
			continue
		}

		p.pos++
		switch p.data[p.pos] {
		case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
		case 'u':
			p.pos++
			for i := 0; i < 4 && p.pos < len(p.data); i++ {
				if !isHex(p.data[p.pos]) {
					return errorAt(p.pos, ErrInvalid)
				}
				p.pos++
			}
			p.pos--
		default:
			return errorAt(p.pos, ErrInvalid)
		}
	}

	return errorAt(start, ErrPartial)
}

// scanPrimitive consumes an unquoted run. On success p.pos rests on the last
// byte of the run so the main loop sees the terminator next.
func (p *parser) scanPrimitive() error {
	start := p.pos

	end, err := p.primitiveEnd()
	if err != nil {
		return err
	}

	p.pos = end - 1
	if p.pool == nil {
		return nil
	}

	index, ok := p.pool.alloc()
	if !ok {
		return errorAt(start, ErrNoMemory)
	}
	p.fill(index, Primitive, start, end)
	return nil
}

func (p *parser) primitiveEnd() (int, error) {
	for i := p.pos; i < len(p.data); i++ {
		c := p.data[i]
		if p.terminates(c) {
			return i, nil
		}
		if c < 0x20 || c > 0x7e {
			return 0, errorAt(i, ErrInvalid)
		}
	}

	// Strict primitives must be followed by a delimiter.
	if p.strict {
		return 0, errorAt(p.pos, ErrPartial)
	}
	return len(p.data), nil
}

func (p *parser) terminates(c byte) bool {
	switch c {
	case '\t', '\r', '\n', ' ', ',', ']', '}':
		return true
	case ':':
		return !p.strict
	default:
		return false
	}
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}

func isStrictPrimitiveStart(c byte) bool {
	switch c {
	case '-', 't', 'f', 'n':
		return true
	default:
		return c >= '0' && c <= '9'
	}
}
