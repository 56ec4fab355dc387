// Package block chunks byte strings into zero-padded 64-bit blocks and runs
// them through a block cipher.
package block

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"

	"github.com/nadoo/gost/pkg/log"
	"github.com/nadoo/gost/pkg/pool"
)

// Size is the block size in bytes that Run works with.
const Size = 8

// ErrBlockSize is returned when a cipher does not use 8-byte blocks.
var ErrBlockSize = errors.New("block: cipher block size must be 8 bytes")

// Result is one block before and after the cipher. Values are the
// little-endian reading of the 8 block bytes.
type Result struct {
	Index     int
	Plain     uint64
	Encrypted uint64
	Decrypted uint64
}

// Count returns the number of size-byte blocks needed for n bytes.
func Count(n, size int) int {
	return (n + size - 1) / size
}

// Pad returns a copy of data zero-padded to a multiple of size.
func Pad(data []byte, size int) []byte {
	out := make([]byte, Count(len(data), size)*size)
	copy(out, data)
	return out
}

// Run pads data, then encrypts every block and decrypts the result again.
func Run(b cipher.Block, data []byte) ([]Result, error) {
	if b.BlockSize() != Size {
		return nil, ErrBlockSize
	}

	padded := Pad(data, Size)
	n := len(padded) / Size
	log.F("[block] %d bytes in %d blocks, %d padding bytes", len(data), n, len(padded)-len(data))

	buf := pool.GetBuffer(2 * Size)
	defer pool.PutBuffer(buf)
	enc, dec := buf[:Size], buf[Size:]

	rs := make([]Result, n)
	for i := range rs {
		src := padded[i*Size : (i+1)*Size]
		b.Encrypt(enc, src)
		b.Decrypt(dec, enc)

		rs[i] = Result{
			Index:     i,
			Plain:     binary.LittleEndian.Uint64(src),
			Encrypted: binary.LittleEndian.Uint64(enc),
			Decrypted: binary.LittleEndian.Uint64(dec),
		}
	}

	return rs, nil
}

// Join writes the column chosen by pick of each result back into bytes.
func Join(rs []Result, pick func(Result) uint64) []byte {
	out := make([]byte, len(rs)*Size)
	for i, r := range rs {
		binary.LittleEndian.PutUint64(out[i*Size:], pick(r))
	}
	return out
}

// Encrypted picks Result.Encrypted for Join.
func Encrypted(r Result) uint64 { return r.Encrypted }

// Decrypted picks Result.Decrypted for Join.
func Decrypted(r Result) uint64 { return r.Decrypted }
