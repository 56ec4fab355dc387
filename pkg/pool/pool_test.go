package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBuffer(t *testing.T) {
	for _, size := range []int{1, 7, 8, 9, 4095, 4096} {
		buf := GetBuffer(size)
		require.Len(t, buf, size)
		require.GreaterOrEqual(t, cap(buf), size)
		PutBuffer(buf)
	}

	big := GetBuffer(maxsize + 1)
	require.Len(t, big, maxsize+1)
	PutBuffer(big)

	require.Len(t, GetBuffer(0), 0)
}

func TestBufReader(t *testing.T) {
	br := GetBufReader(strings.NewReader("key line\nrest"))
	line, err := br.ReadString('\n')
	require.NoError(t, err)
	require.Equal(t, "key line\n", line)
	PutBufReader(br)

	br = GetBufReader(strings.NewReader("other"))
	defer PutBufReader(br)
	s, _ := br.ReadString('\n')
	require.Equal(t, "other", s)
}

func TestBytesBuffer(t *testing.T) {
	buf := GetBytesBuffer()
	buf.WriteString("block")
	PutBytesBuffer(buf)

	buf = GetBytesBuffer()
	defer PutBytesBuffer(buf)
	require.Zero(t, buf.Len())
}
