package random

import "math/rand/v2"

var uint32Func = rand.Uint32

// Uint32 returns 32 pseudo-random bits from the configured source.
func Uint32() uint32 {
	return uint32Func()
}

// SetUint32ForTest overrides the random source and returns a restore function.
func SetUint32ForTest(fn func() uint32) func() {
	previous := uint32Func
	uint32Func = fn
	return func() {
		uint32Func = previous
	}
}

// Source produces 32 random bits per call.
type Source func() uint32

// Default draws from Uint32.
func Default() Source {
	return Uint32
}

// Bits hands out random bits one at a time from a buffered 32-bit word.
// It is a plain value: every draw returns the next state, and callers keep
// whichever state they want to continue from. The zero value is empty and
// refills on first use.
type Bits struct {
	word      uint32
	remaining uint8
}

// Next returns the following bit and the advanced state.
func (b Bits) Next(src Source) (Bits, bool) {
	if b.remaining == 0 {
		b.word = src()
		b.remaining = 32
	}

	bit := b.word&1 == 1
	b.word >>= 1
	b.remaining--
	return b, bit
}

// Byte assembles eight draws, least significant bit first.
func (b Bits) Byte(src Source) (Bits, byte) {
	var out byte
	for i := range 8 {
		var bit bool
		b, bit = b.Next(src)
		if bit {
			out |= 1 << i
		}
	}
	return b, out
}

// Remaining reports how many buffered bits are left before the next refill.
func (b Bits) Remaining() int {
	return int(b.remaining)
}
