package attrfmt

// BoundedBuffer is a Sink that writes into a caller-owned fixed buffer.
// One slot is reserved for the terminating zero byte, so at most
// len(buf)-1 characters are stored. Every offered character is counted
// whether it was stored or not; a count exceeding the stored capacity
// is how callers detect truncation, and truncation is not an error.
type BoundedBuffer struct {
	buf []byte
	pos int
	end int
	n   int
}

// NewBoundedBuffer wraps buf as a sink. It fails with
// ErrInvalidArgument when buf is nil or has no room for the terminator;
// nothing is written in that case.
func NewBoundedBuffer(buf []byte) (*BoundedBuffer, error) {
	if len(buf) < 1 {
		return nil, ErrInvalidArgument
	}
	return &BoundedBuffer{buf: buf, end: len(buf) - 1}, nil
}

// Put counts ch unconditionally and stores it while the cursor is still
// before the reserved terminator slot. Attribute bits do not survive
// into the buffer.
func (b *BoundedBuffer) Put(ch byte, _ Attr) {
	b.n++
	if b.pos < b.end {
		b.buf[b.pos] = ch
		b.pos++
	}
}

// Terminate writes the closing zero byte at the current cursor. The
// slot is always in bounds, truncated or not.
func (b *BoundedBuffer) Terminate() {
	b.buf[b.pos] = 0
}

// Count reports every character offered to the buffer, stored or not.
func (b *BoundedBuffer) Count() int { return b.n }

// Truncated reports whether any offered character was dropped.
func (b *BoundedBuffer) Truncated() bool { return b.n > b.end }

// String returns the stored characters, without the terminator.
func (b *BoundedBuffer) String() string { return string(b.buf[:b.pos]) }
