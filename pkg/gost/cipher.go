package gost

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the block size in bytes.
const BlockSize = 8

type gostCipher struct {
	subkeys Schedule
}

// NewCipher returns a cipher.Block using the 32-byte key, read as by
// KeyFromBytes. Blocks are little-endian 64-bit values. The returned Block
// is safe for concurrent use.
func NewCipher(key []byte) (cipher.Block, error) {
	k, err := KeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	return &gostCipher{subkeys: Subkeys(k)}, nil
}

func (c *gostCipher) BlockSize() int { return BlockSize }

func (c *gostCipher) Encrypt(dst, src []byte) { c.crypt(dst, src, Encryption) }

func (c *gostCipher) Decrypt(dst, src []byte) { c.crypt(dst, src, Decryption) }

func (c *gostCipher) crypt(dst, src []byte, mode Mode) {
	if len(src) < BlockSize {
		panic("gost: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost: output not full block")
	}
	v := binary.LittleEndian.Uint64(src)
	binary.LittleEndian.PutUint64(dst, c.subkeys.transform(v, mode))
}
