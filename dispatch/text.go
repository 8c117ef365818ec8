package dispatch

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

const inlineTextSize = 256

type textBuf struct {
	inline [inlineTextSize]byte
	buf    []byte
	gen    atomic.Uint64
}

// Text is a NUL-terminated UTF-8 copy of a Go string that stays valid for
// the duration of one foreign call. Short strings use a pooled inline
// buffer; longer ones fall back to the heap.
//
// A Text is one acquisition of a pooled buffer. Once released, every copy
// of it is dead even after the pool hands the buffer to another caller.
type Text struct {
	b      *textBuf
	gen    uint64
	absent bool
}

var (
	textPool         = sync.Pool{New: func() any { return new(textBuf) }}
	textOutstanding  atomic.Int64
	textHeapFallback atomic.Int64
)

// NewText encodes s. The empty string yields a zero-length terminated
// buffer, not NULL.
func NewText(s string) Text {
	b := textPool.Get().(*textBuf)
	n := len(s) + 1
	if n <= inlineTextSize {
		b.buf = b.inline[:n]
	} else {
		b.buf = make([]byte, n)
		textHeapFallback.Add(1)
	}
	copy(b.buf, s)
	b.buf[n-1] = 0
	textOutstanding.Add(1)
	return Text{b: b, gen: b.gen.Add(1)}
}

// OptionalText is NewText for optional arguments: the empty string is
// absent and Ptr returns nil. The terminated empty buffer is still built.
func OptionalText(s string) Text {
	t := NewText(s)
	t.absent = s == ""
	return t
}

func (t Text) live() bool {
	return t.b != nil && t.b.gen.Load() == t.gen
}

// Ptr returns the address to hand to the host, nil when absent or released.
func (t Text) Ptr() unsafe.Pointer {
	if t.absent || !t.live() {
		return nil
	}
	return unsafe.Pointer(&t.b.buf[0])
}

// Bytes returns the encoded bytes including the terminator.
func (t Text) Bytes() []byte {
	if !t.live() {
		return nil
	}
	return t.b.buf
}

// Release returns the buffer to the pool. Releasing the same acquisition
// again does nothing.
func (t Text) Release() {
	if t.b == nil || !t.b.gen.CompareAndSwap(t.gen, t.gen+1) {
		return
	}
	t.b.buf = nil
	textOutstanding.Add(-1)
	textPool.Put(t.b)
}

// OutstandingText returns the number of Text buffers not yet released.
func OutstandingText() int64 {
	return textOutstanding.Load()
}

// TextHeapAllocations returns how many encodings exceeded the inline buffer.
func TextHeapAllocations() int64 {
	return textHeapFallback.Load()
}
