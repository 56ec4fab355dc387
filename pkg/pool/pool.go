// Package pool keeps reusable byte slices, bufio readers and bytes buffers.
package pool

import (
	"bufio"
	"bytes"
	"io"
	"math/bits"
	"sync"
)

const (
	// number of size classes, 1 byte .. 4 KiB.
	num     = 13
	maxsize = 1 << (num - 1)
)

var (
	sizes [num]int
	pools [num]sync.Pool

	bufReaderPool sync.Pool
	bytesBufPool  = sync.Pool{
		New: func() any { return &bytes.Buffer{} },
	}
)

func init() {
	for i := 0; i < num; i++ {
		size := 1 << i
		sizes[i] = size
		pools[i].New = func() any {
			return make([]byte, size)
		}
	}
}

// GetBuffer gets a buffer from pool, size should in range: [1, 4096],
// otherwise, this function will call make([]byte, size) directly.
// The returned bytes are not zeroed.
func GetBuffer(size int) []byte {
	if size >= 1 && size <= maxsize {
		i := bits.Len32(uint32(size)) - 1
		if sizes[i] < size {
			i++
		}
		return pools[i].Get().([]byte)[:size]
	}
	return make([]byte, size)
}

// PutBuffer puts a buffer into pool.
func PutBuffer(buf []byte) {
	if size := cap(buf); size >= 1 && size <= maxsize {
		i := bits.Len32(uint32(size)) - 1
		if sizes[i] == size {
			pools[i].Put(buf[:size])
		}
	}
}

// GetBufReader returns a *bufio.Reader reading from r.
func GetBufReader(r io.Reader) *bufio.Reader {
	if v := bufReaderPool.Get(); v != nil {
		br := v.(*bufio.Reader)
		br.Reset(r)
		return br
	}
	return bufio.NewReader(r)
}

// PutBufReader puts a *bufio.Reader into pool.
func PutBufReader(br *bufio.Reader) {
	br.Reset(nil)
	bufReaderPool.Put(br)
}

// GetBytesBuffer returns an empty bytes.Buffer.
func GetBytesBuffer() *bytes.Buffer {
	return bytesBufPool.Get().(*bytes.Buffer)
}

// PutBytesBuffer puts a bytes.Buffer into pool, large ones are dropped.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= 64<<10 {
		buf.Reset()
		bytesBufPool.Put(buf)
	}
}
