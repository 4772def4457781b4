package karl

import "sync"

// buffer is a simple growing byte buffer with manual capacity management.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeBytes(p []byte)  { buf.b = append(buf.b, p...) }

func (buf *buffer) String() string { return string(buf.b) }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 1024)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// avoid retaining very large backing arrays
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
