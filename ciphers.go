package main

import (
	"crypto/cipher"
	"crypto/des"
	"errors"
	"sort"
	"strings"

	"github.com/dgryski/go-idea"
	"github.com/dgryski/go-rc2"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"

	"github.com/nadoo/gost/pkg/gost"
)

// ErrCipherNotSupported occurs when the cipher name is unknown.
var ErrCipherNotSupported = errors.New("cipher not supported")

type cipherInfo struct {
	keyLen   int
	newBlock func(key []byte) (cipher.Block, error)
}

// 64-bit block ciphers the demo can run; all take a prefix of the 256-bit key.
var blockCiphers = map[string]*cipherInfo{
	"gost":  {gost.KeySize, gost.NewCipher},
	"idea":  {16, idea.NewCipher},
	"rc2":   {16, newRC2Block},
	"bf":    {16, newBlowfishBlock},
	"cast5": {16, newCast5Block},
	"des":   {8, des.NewCipher},
}

func newRC2Block(key []byte) (cipher.Block, error) {
	return rc2.New(key, len(key)*8)
}

func newBlowfishBlock(key []byte) (cipher.Block, error) {
	return blowfish.NewCipher(key)
}

func newCast5Block(key []byte) (cipher.Block, error) {
	return cast5.NewCipher(key)
}

// pickCipher returns the named block cipher keyed with the first bytes of key.
func pickCipher(name string, key gost.Key) (cipher.Block, error) {
	info, ok := blockCiphers[strings.ToLower(name)]
	if !ok {
		return nil, ErrCipherNotSupported
	}
	return info.newBlock(key.Bytes()[:info.keyLen])
}

// listCiphers returns the supported cipher names.
func listCiphers() string {
	names := make([]string, 0, len(blockCiphers))
	for name := range blockCiphers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
