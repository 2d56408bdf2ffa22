package settings

import (
	"fmt"
	"strings"

	"github.com/EmmerichFrog/bt-home-remote/internal/random"
)

// Address is a 6-byte Bluetooth MAC address, most significant byte first.
type Address [6]byte

// FixedAddress is advertised when MAC randomization is off.
var FixedAddress = Address{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

// Address picks the MAC address to advertise. With randomization on, the
// bytes are drawn from bits, and the advanced generator state is returned for
// the next call.
func (s Settings) Address(bits random.Bits, src random.Source) (random.Bits, Address) {
	if !s.RandomizeMAC {
		return bits, FixedAddress
	}

	var addr Address
	for i := range addr {
		bits, addr[i] = bits.Byte(src)
	}
	return bits, addr
}

func (a Address) String() string {
	parts := make([]string, len(a))
	for i, b := range a {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}
