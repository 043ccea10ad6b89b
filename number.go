package attrfmt

const numDigits = "0123456789abcdef"

// number renders v in base (2..16), most significant digit first, with
// the current attribute mask on digits and pad characters alike. More
// significant digits are emitted by recursing first, each level
// consuming one unit of width; the remaining width is padded before the
// leading digit. Output length is exactly max(width, digit count) and
// numeric conversions are never truncated.
func (e *engine) number(v, base uint64, width int, pad byte) {
	if v >= base {
		e.number(v/base, base, width-1, pad)
	} else {
		for width--; width > 0; width-- {
			e.sink.Put(pad, e.attr)
		}
	}
	e.sink.Put(numDigits[v%base], e.attr)
}
