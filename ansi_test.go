package attrfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/attrfmt/attrfmt"
)

// forceColor enables color output for the duration of a test;
// fatih/color disables itself when stdout is not a terminal. Tests
// using it must not run in parallel since NoColor is package state.
func forceColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = old })
}

func TestFprintfaForegroundRun(t *testing.T) {
	forceColor(t)
	var buf bytes.Buffer
	attrfmt.Fprintfa(&buf, "%FRred%C plain")

	out := buf.String()
	assert.Contains(t, out, "\x1b[31mred\x1b[0m")
	assert.True(t, strings.HasSuffix(out, " plain"), "cleared run is unstyled: %q", out)
}

func TestFprintfaIntensitySelectsBrightVariant(t *testing.T) {
	forceColor(t)
	var buf bytes.Buffer
	attrfmt.Fprintfa(&buf, "%FR%FIx")

	assert.Contains(t, buf.String(), "\x1b[91m")
}

func TestFprintfaBackgroundRun(t *testing.T) {
	forceColor(t)
	var buf bytes.Buffer
	attrfmt.Fprintfa(&buf, "%BGx")

	assert.Contains(t, buf.String(), "\x1b[42m")
}

func TestFprintfaPlainTextPassthrough(t *testing.T) {
	forceColor(t)
	var buf bytes.Buffer
	attrfmt.Fprintfa(&buf, "no escapes %d", 5)

	assert.Equal(t, "no escapes 5", buf.String())
}

func TestANSIWriterBuffersRuns(t *testing.T) {
	forceColor(t)
	var buf bytes.Buffer
	w := attrfmt.NewANSIWriter(&buf)

	w.Put('a', attrfmt.FgRed)
	w.Put('b', attrfmt.FgRed)
	assert.Empty(t, buf.String(), "run is held until the attribute changes or Flush")

	w.Put('c', 0)
	assert.Contains(t, buf.String(), "\x1b[31mab\x1b[0m")

	w.Flush()
	assert.True(t, strings.HasSuffix(buf.String(), "c"))
}

func TestWriterSinkDropsAttributes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	attrfmt.Fprintf(&buf, "%FRx%C y")
	assert.Equal(t, "x y", buf.String())
}
