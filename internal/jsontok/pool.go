package jsontok

// Pool is a fixed-capacity token array. Slots are handed out in order and
// never released individually; Reset rewinds the whole pool.
type Pool struct {
	tokens []Token
	next   int
}

func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{tokens: make([]Token, capacity)}
}

// alloc returns the index of a fresh token, or false when the pool is full.
func (p *Pool) alloc() (int, bool) {
	if p.next >= len(p.tokens) {
		return 0, false
	}

	index := p.next
	p.next++
	p.tokens[index] = Token{
		Start:  Unset,
		End:    Unset,
		Parent: -1,
	}
	return index, true
}

// Tokens returns the allocated prefix of the pool. The slice aliases the
// pool and is only valid until the next Reset.
func (p *Pool) Tokens() []Token {
	return p.tokens[:p.next]
}

func (p *Pool) Len() int {
	return p.next
}

func (p *Pool) Cap() int {
	return len(p.tokens)
}

// Reset makes every slot available again.
func (p *Pool) Reset() {
	clear(p.tokens[:p.next])
	p.next = 0
}
