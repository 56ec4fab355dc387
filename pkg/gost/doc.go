// Package gost implements a GOST 28147-89 style block cipher: 64-bit blocks,
// a 256-bit key, 32 Feistel rounds and eight fixed 4-bit S-boxes.
//
// The round function adds the subkey modulo 0xFFFFFFFF instead of 2^32, so
// ciphertexts are only interoperable with this variant, not with the
// standard cipher.
//
// Blocks are plain uint64 values whose low 32 bits form the first Feistel
// half. A Key is eight 32-bit words; NewKey builds one from four 64-bit
// components and KeyFromBytes from 32 little-endian bytes.
//
//	key := gost.NewKey(k0, k1, k2, k3)
//	ct := gost.Encrypt(pt, key)
//	pt = gost.Decrypt(ct, key)
//
// NewCipher wraps the same transform as a crypto/cipher.Block with the key
// schedule computed once.
//
// This package does not provide modes of operation or padding, and lookups
// are not constant time.
package gost
