package attrfmt

// Attr is the display-attribute mask attached to every character a
// formatting call emits. The mask is set and cleared inline by the %F,
// %B, and %C directives and persists across the rest of the call, so
// pad characters and literal text pick it up too.
//
// Each plane (foreground, background) has three additive color bits and
// an intensity bit. The low byte is left free for the character code,
// matching sinks that pack both into a single cell value.
type Attr uint16

const (
	FgBlue      Attr = 0x0100
	FgGreen     Attr = 0x0200
	FgRed       Attr = 0x0400
	FgIntensity Attr = 0x0800
	BgBlue      Attr = 0x1000
	BgGreen     Attr = 0x2000
	BgRed       Attr = 0x4000
	BgIntensity Attr = 0x8000
)
