package attrfmt

import "io"

// Sink accepts one attributed character at a time. It is the single
// capability the engine writes through: there is no failure channel, so
// implementations absorb their own errors (a full buffer, a failed
// write) silently.
type Sink interface {
	Put(ch byte, attr Attr)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ch byte, attr Attr)

// Put calls f(ch, attr).
func (f SinkFunc) Put(ch byte, attr Attr) { f(ch, attr) }

// WriterSink forwards raw characters to an io.Writer and discards the
// attribute bits. Write errors are swallowed per the Sink contract.
type WriterSink struct {
	W io.Writer
}

// Put writes the character byte to the underlying writer.
func (s WriterSink) Put(ch byte, _ Attr) {
	_, _ = s.W.Write([]byte{ch})
}
