package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds the buffers frames and packet bodies are assembled in before being written to
// a connection. Use GetBuffer and PutBuffer rather than the pool directly.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// maxPooledBuffer bounds the capacity of buffers returned to the pool, so that a single large
// status document does not stay pinned in memory.
const maxPooledBuffer = 64 * 1024

// GetBuffer returns an empty buffer from BufferPool.
func GetBuffer() *bytes.Buffer {
	return BufferPool.Get().(*bytes.Buffer)
}

// PutBuffer resets buf and returns it to BufferPool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	BufferPool.Put(buf)
}
