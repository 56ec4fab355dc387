package gost

import "encoding/binary"

// KeySize is the key size in bytes.
const KeySize = 32

// Key is a 256-bit key as eight 32-bit words.
type Key [8]uint32

// NewKey builds a Key from four 64-bit components. Each component gives two
// words, low half first: k0 low, k0 high, k1 low, k1 high and so on.
func NewKey(k0, k1, k2, k3 uint64) Key {
	var k Key
	for i, c := range [4]uint64{k0, k1, k2, k3} {
		k[2*i] = uint32(c)
		k[2*i+1] = uint32(c >> 32)
	}
	return k
}

// KeyFromBytes reads a Key from 32 bytes holding eight little-endian words,
// which is the same as four little-endian 64-bit components.
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, KeySizeError(len(b))
	}
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return k, nil
}

// Components returns the four 64-bit components NewKey was built from.
func (k Key) Components() [4]uint64 {
	var c [4]uint64
	for i := range c {
		c[i] = uint64(k[2*i]) | uint64(k[2*i+1])<<32
	}
	return c
}

// Bytes returns the little-endian encoding accepted by KeyFromBytes.
func (k Key) Bytes() []byte {
	b := make([]byte, KeySize)
	for i, w := range k {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// Rounds is the number of Feistel rounds.
const Rounds = 32

// Schedule is the ordered list of round subkeys.
type Schedule [Rounds]uint32

// Subkeys derives the round subkeys: the key words three times in order,
// then once reversed.
func Subkeys(key Key) Schedule {
	var s Schedule
	for i := 0; i < 24; i++ {
		s[i] = key[i%len(key)]
	}
	for i := 24; i < Rounds; i++ {
		s[i] = key[7-i%len(key)]
	}
	return s
}
