// Package attrfmt is a small printf-style formatting engine that emits
// output one attributed character at a time through a caller-supplied
// sink. It supports a constrained subset of the classic conversions
// plus an inline escape syntax for text color attributes, and is meant
// to sit underneath console drivers and bounded string builders.
//
// The central entry point is [Formatter.Format], which drives a [Sink];
// [Sprintf], [Snprintf], [Fprintf], and [Fprintfa] are conveniences
// layered on top of it.
//
// # Directives
//
// A directive is introduced by '%' and accumulates modifiers until a
// conversion character resolves it:
//
//   - '-' and '0' select the pad character (see the note on '-' below)
//   - a digit run sets the width, or the precision once a width exists
//   - '*' reads the width (or precision) from the next argument
//   - '.' resolves an unset width to 0, unlocking the precision slot
//   - '#' sets the alternate form flag (%s replaces unprintable bytes
//     with '?')
//   - 'l' widens the integer argument; one or more select the 64-bit
//     tier, none the 32-bit tier
//
// Conversions: %c (character), %d (signed decimal), %u %o %x (unsigned
// decimal, octal, hex), %p (pointer, 0x-prefixed hex), %s (string,
// "(null)" when the argument is absent), %e (error code resolved
// through an [ErrorTable]), and %% (literal percent). An unrecognized
// conversion is not an error: the whole directive is echoed back as
// literal text.
//
// Note that '-' only changes the pad character; numeric conversions pad
// with literal '-' bytes rather than left-justifying. This mirrors the
// original console implementation and is kept deliberately.
//
// # Attributes
//
// %F and %B followed by one selector character set or clear foreground
// and background color bits: 'B', 'G', 'R', 'I' set blue, green, red,
// and intensity, lowercase clears the same bit, and %C clears the whole
// mask. The mask persists for the rest of the call and is attached to
// every emitted character, pad characters included:
//
//	attrfmt.Fprintfa(os.Stdout, "%FR%FIwarning:%C %s\n", msg)
//
// # Sinks
//
// A [Sink] accepts one (character, attribute) pair and cannot fail.
// [WriterSink] drops attributes into an io.Writer, [ANSIWriter] renders
// them as ANSI SGR runs, and [BoundedBuffer] stores into a fixed
// buffer, counting every attempted character so truncation shows up in
// the count rather than as an error:
//
//	buf := make([]byte, 16)
//	n, err := attrfmt.Snprintf(buf, "%5d", 42)
//
// # Error codes
//
// %e takes a signed integer code, folds it to its absolute value, and
// looks it up in the [Formatter]'s [ErrorTable]; unknown codes render
// as "error N". The table is supplied by the embedding environment,
// either literally or via [ParseErrorTable]/[LoadErrorTable] from a
// YAML mapping.
package attrfmt
