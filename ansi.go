package attrfmt

import (
	"io"

	"github.com/fatih/color"
)

// ANSIWriter is a Sink that renders attribute runs as ANSI SGR
// sequences. Consecutive characters sharing an attribute mask are
// buffered into a run and written together wrapped in the mapped
// color; call Flush after formatting to emit the final run.
type ANSIWriter struct {
	w    io.Writer
	attr Attr
	run  []byte
}

// NewANSIWriter returns an ANSI-rendering sink over w.
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{w: w}
}

// Put buffers ch into the current run, flushing first when the
// attribute mask changes.
func (a *ANSIWriter) Put(ch byte, attr Attr) {
	if attr != a.attr {
		a.Flush()
		a.attr = attr
	}
	a.run = append(a.run, ch)
}

// Flush writes the pending run. Write errors are swallowed per the
// Sink contract.
func (a *ANSIWriter) Flush() {
	if len(a.run) == 0 {
		return
	}
	if c := sgr(a.attr); c != nil {
		_, _ = c.Fprint(a.w, string(a.run))
	} else {
		_, _ = a.w.Write(a.run)
	}
	a.run = a.run[:0]
}

// sgr maps an attribute mask to a color. The three color bits of each
// plane form an ANSI palette index and the intensity bit selects the
// bright variant. A zero mask means unstyled output.
func sgr(attr Attr) *color.Color {
	if attr == 0 {
		return nil
	}
	c := color.New()
	if attr&(FgBlue|FgGreen|FgRed|FgIntensity) != 0 {
		base := color.FgBlack
		if attr&FgIntensity != 0 {
			base = color.FgHiBlack
		}
		c.Add(base + ansiIndex(attr, FgBlue, FgGreen, FgRed))
	}
	if attr&(BgBlue|BgGreen|BgRed|BgIntensity) != 0 {
		base := color.BgBlack
		if attr&BgIntensity != 0 {
			base = color.BgHiBlack
		}
		c.Add(base + ansiIndex(attr, BgBlue, BgGreen, BgRed))
	}
	return c
}

// ansiIndex packs one plane's color bits into ANSI palette order:
// red=1, green=2, blue=4.
func ansiIndex(attr, blue, green, red Attr) color.Attribute {
	var n color.Attribute
	if attr&red != 0 {
		n |= 1
	}
	if attr&green != 0 {
		n |= 2
	}
	if attr&blue != 0 {
		n |= 4
	}
	return n
}
