package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nadoo/gost/pkg/gost"
)

var errKeyFormat = errors.New("key must be 4 hex numbers or 64 hex digits")

// parseKey reads a 256-bit key written most significant part first, either
// as four hex numbers separated by spaces or commas, or as one 64-digit hex
// string.
func parseKey(s string) (gost.Key, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) == 1 {
		h := trimHexPrefix(fields[0])
		if len(h) != 64 {
			return gost.Key{}, errKeyFormat
		}
		fields = []string{h[:16], h[16:32], h[32:48], h[48:]}
	}

	if len(fields) != 4 {
		return gost.Key{}, errKeyFormat
	}

	// fields[0] is component 3, like "%llx%llx%llx%llx" into key[3]..key[0].
	var c [4]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(trimHexPrefix(f), 16, 64)
		if err != nil {
			return gost.Key{}, fmt.Errorf("invalid key part %q: %w", f, err)
		}
		c[3-i] = v
	}

	return gost.NewKey(c[0], c[1], c[2], c[3]), nil
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
