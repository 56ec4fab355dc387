package gost

// Mode selects the subkey order of a transform.
type Mode int

const (
	Encryption Mode = iota
	Decryption
)

func (m Mode) String() string {
	switch m {
	case Encryption:
		return "encrypt"
	case Decryption:
		return "decrypt"
	}
	return "unknown"
}

// Encrypt encrypts one block with key.
func Encrypt(block uint64, key Key) uint64 {
	return Transform(block, key, Encryption)
}

// Decrypt decrypts one block with key.
func Decrypt(block uint64, key Key) uint64 {
	return Transform(block, key, Decryption)
}

// Transform runs the 32 Feistel rounds over block. Decryption walks the
// subkeys backwards; the round structure is the same in both modes.
func Transform(block uint64, key Key, mode Mode) uint64 {
	s := Subkeys(key)
	return s.transform(block, mode)
}

func (s *Schedule) transform(block uint64, mode Mode) uint64 {
	a, b := uint32(block), uint32(block>>32)

	for i := 0; i < Rounds; i++ {
		k := s[i]
		if mode == Decryption {
			k = s[Rounds-1-i]
		}
		a ^= mix(b, k)
		a, b = b, a
	}

	// undo the swap of the last round.
	a, b = b, a

	return uint64(b)<<32 | uint64(a)
}
