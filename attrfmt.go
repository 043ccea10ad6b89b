package attrfmt

import (
	"errors"
	"io"
	"strings"
)

// ErrInvalidArgument reports a bounded buffer with no usable capacity.
// It is the only hard failure in the package; every malformed format
// input degrades into substituted text instead.
var ErrInvalidArgument = errors.New("invalid argument")

// Formatter is a formatting engine bound to an error-code table. The
// zero value is usable: every %e conversion then falls back to its
// numeric "error N" message.
//
// A Formatter holds no mutable state across calls, so concurrent calls
// against independent sinks are safe. Sharing one sink between
// concurrent calls needs caller-side synchronization.
type Formatter struct {
	// Errors resolves %e conversions. Missing or empty entries fall
	// back to "error N".
	Errors ErrorTable
}

// Format renders format into sink, one attributed character at a time.
// See the package documentation for the directive syntax.
func (f *Formatter) Format(sink Sink, format string, args ...any) {
	e := engine{f: f, sink: sink}
	e.run(format, &argCursor{args: args})
}

// Snprintf formats into buf, storing at most len(buf)-1 characters plus
// a terminating zero byte. It returns the number of characters the
// unbounded rendering would have produced; a value exceeding
// len(buf)-1 signals truncation, which is not an error. A nil or empty
// buf fails with ErrInvalidArgument before any write.
func (f *Formatter) Snprintf(buf []byte, format string, args ...any) (int, error) {
	b, err := NewBoundedBuffer(buf)
	if err != nil {
		return 0, err
	}
	f.Format(b, format, args...)
	b.Terminate()
	return b.Count(), nil
}

// Sprintf renders to a plain string, attribute bits dropped.
func (f *Formatter) Sprintf(format string, args ...any) string {
	var sb strings.Builder
	f.Format(SinkFunc(func(ch byte, _ Attr) { sb.WriteByte(ch) }), format, args...)
	return sb.String()
}

// Fprintf writes plain text to w, attribute bits dropped.
func (f *Formatter) Fprintf(w io.Writer, format string, args ...any) {
	f.Format(WriterSink{w}, format, args...)
}

// Fprintfa writes to w with attribute runs translated to ANSI SGR
// sequences.
func (f *Formatter) Fprintfa(w io.Writer, format string, args ...any) {
	a := NewANSIWriter(w)
	f.Format(a, format, args...)
	a.Flush()
}

// std backs the package-level convenience functions, preloaded with the
// classic error strings.
var std = &Formatter{Errors: DefaultErrors()}

// SetErrors replaces the error-code table used by the package-level
// functions.
func SetErrors(t ErrorTable) { std.Errors = t }

// Format renders format into sink using the default Formatter.
func Format(sink Sink, format string, args ...any) { std.Format(sink, format, args...) }

// Sprintf renders to a plain string using the default Formatter.
func Sprintf(format string, args ...any) string { return std.Sprintf(format, args...) }

// Snprintf formats into a fixed buffer using the default Formatter.
func Snprintf(buf []byte, format string, args ...any) (int, error) {
	return std.Snprintf(buf, format, args...)
}

// Fprintf writes plain text to w using the default Formatter.
func Fprintf(w io.Writer, format string, args ...any) { std.Fprintf(w, format, args...) }

// Fprintfa writes ANSI-colored text to w using the default Formatter.
func Fprintfa(w io.Writer, format string, args ...any) { std.Fprintfa(w, format, args...) }
