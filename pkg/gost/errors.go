package gost

import "strconv"

// KeySizeError is an error about the key size.
type KeySizeError int

func (e KeySizeError) Error() string {
	return "gost: invalid key size " + strconv.Itoa(int(e)) + ", need " + strconv.Itoa(KeySize) + " bytes"
}
