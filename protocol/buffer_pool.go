package protocol

import (
	"bytes"
	"sync"
)

// MaxPooledBuffer caps the size of buffers returned to the pool. A
// get_tree reply can momentarily grow a scratch buffer to megabytes;
// retaining those would pin memory for the life of the process.
const MaxPooledBuffer = 1024 * 1024

// bufferPool reuses frame scratch buffers so each outgoing frame costs
// one Write and no per-frame allocation.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

// GetBuffer retrieves a buffer from the pool, reset and ready for use.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// GetBufferWithSize retrieves a pooled buffer grown to the given size
// hint, reducing reallocations when the frame size is already known.
func GetBufferWithSize(sizeHint int) *bytes.Buffer {
	buf := GetBuffer()
	if sizeHint > 0 && buf.Cap() < sizeHint {
		buf.Grow(sizeHint)
	}
	return buf
}

// PutBuffer returns a buffer to the pool. Oversized buffers are dropped
// instead of pooled.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > MaxPooledBuffer {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
