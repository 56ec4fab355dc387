package gost

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// bytes 0x00..0x1f as four little-endian components.
var seqKey = NewKey(
	0x0706050403020100, 0x0f0e0d0c0b0a0908,
	0x1716151413121110, 0x1f1e1d1c1b1a1918,
)

func TestGoldenValues(t *testing.T) {
	t.Parallel()

	ones := NewKey(^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0))

	tests := []struct {
		name string
		key  Key
		mode Mode
		in   uint64
		out  uint64
	}{
		{"zero key encrypt", Key{}, Encryption, 0, 0xa6c2fdc912610be2},
		{"zero key decrypt", Key{}, Decryption, 0, 0xa6c2fdc912610be2},
		{"sequential key encrypt", seqKey, Encryption, 0, 0x921512b99cf99e1d},
		{"sequential key decrypt", seqKey, Decryption, 0, 0x56dc3f6de3433358},
		{"text block", seqKey, Encryption, 0x57202c6f6c6c6548, 0x6e1527fdec8f315c},
		{"repeated word key", Key{
			0x01020304, 0x01020304, 0x01020304, 0x01020304,
			0x01020304, 0x01020304, 0x01020304, 0x01020304,
		}, Encryption, 0, 0x615f604a92f17aad},
		{"all ones key", ones, Encryption, 0x0123456789abcdef, 0xaec71b9a523fc1a6},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Transform(tc.in, tc.key, tc.mode)
			require.Equalf(t, tc.out, got, "got %016x", got)

			back := Decryption
			if tc.mode == Decryption {
				back = Encryption
			}
			require.Equal(t, tc.in, Transform(got, tc.key, back))
		})
	}
}

func TestEncryptDecryptWrappers(t *testing.T) {
	t.Parallel()

	require.Equal(t, Transform(42, seqKey, Encryption), Encrypt(42, seqKey))
	require.Equal(t, Transform(42, seqKey, Decryption), Decrypt(42, seqKey))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, testRoundTrip)
}

func FuzzRoundTrip(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testRoundTrip))
}

func testRoundTrip(t *rapid.T) {
	key := NewKey(
		rapid.Uint64().Draw(t, "k0"),
		rapid.Uint64().Draw(t, "k1"),
		rapid.Uint64().Draw(t, "k2"),
		rapid.Uint64().Draw(t, "k3"),
	)
	block := rapid.Uint64().Draw(t, "block")

	ct := Encrypt(block, key)
	require.Equal(t, block, Decrypt(ct, key))
	require.Equal(t, block, Encrypt(Decrypt(block, key), key))
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	first := Encrypt(0xdeadbeefcafebabe, seqKey)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Encrypt(0xdeadbeefcafebabe, seqKey))
	}
}

func TestAvalanche(t *testing.T) {
	t.Parallel()

	for _, key := range []Key{{}, seqKey} {
		for _, x := range []uint64{0, 0x57202c6f6c6c6548} {
			ct := Encrypt(x, key)
			for i := 0; i < 64; i++ {
				diff := bits.OnesCount64(ct ^ Encrypt(x^1<<i, key))
				require.GreaterOrEqualf(t, diff, 16,
					"bit %d of %016x changed only %d output bits", i, x, diff)
			}
		}
	}
}

func TestModulusAddition(t *testing.T) {
	t.Parallel()

	// 0xFFFFFFFF + 0 wraps to 0 under the round modulus, not under 2^32.
	require.Equal(t, mix(0, 0), mix(0xFFFFFFFF, 0))
	require.Equal(t, mix(0, 0), mix(0x80000000, 0x7FFFFFFF))

	// 0xFFFFFFFF + 1 is 1 here; 2^32 wraparound would give 0.
	require.Equal(t, mix(1, 0), mix(0xFFFFFFFF, 1))
	require.NotEqual(t, mix(0, 0), mix(0xFFFFFFFF, 1))
}

func TestMixZero(t *testing.T) {
	t.Parallel()

	// nibble i of a zero sum maps to sbox[i][0].
	var want uint32
	for i := 0; i < 8; i++ {
		want |= uint32(sbox[i][0]) << (4 * i)
	}
	require.Equal(t, bits.RotateLeft32(want, 11), mix(0, 0))
}
