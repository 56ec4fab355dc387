package gost

import "math/bits"

const (
	// addition modulus of the round function, one less than 2^32.
	modulus  = 0xFFFFFFFF
	rotation = 11
)

// mix is the round function: add the subkey, substitute each nibble through
// its table, rotate left by 11.
func mix(half, subkey uint32) uint32 {
	sum := uint32((uint64(half) + uint64(subkey)) % modulus)

	var combined uint32
	for i := uint8(0); i < 8; i++ {
		n := uint8(sum>>(4*i)) & 0xF
		combined |= uint32(substitute(i, n)) << (4 * i)
	}

	return bits.RotateLeft32(combined, rotation)
}
