package attrfmt

// directive is one parsed %-escape: the pad character, the resolved
// width and precision (-1 means unset), the accumulated l-count, and
// the alternate-form flag.
type directive struct {
	pad    byte
	width  int
	prec   int
	length int
	alt    bool
}

// engine is the state of one top-level formatting call. The attribute
// mask lives here, not in the directive: it persists across directives
// until %C clears it or the call returns.
type engine struct {
	f    *Formatter
	sink Sink
	attr Attr
}

func (e *engine) run(format string, args *argCursor) {
	i := 0
	for {
		// Literal text up to the next directive.
		for {
			if i >= len(format) {
				return
			}
			ch := format[i]
			i++
			if ch == '%' {
				break
			}
			e.sink.Put(ch, e.attr)
		}
		i = e.directive(format, i, args)
	}
}

// directive scans one %-escape whose body starts at format[start] and
// returns the position where the literal scan resumes.
//
// A leading digit run fills width if width is still unset, else
// precision; '.' merely unlocks the precision slot by resolving width
// to 0. This reclassification lets the same digit path serve both
// fields and has to stay exactly as is.
func (e *engine) directive(format string, start int, args *argCursor) int {
	d := directive{pad: ' ', width: -1, prec: -1}

	i := start
	for {
		if i >= len(format) {
			// Dangling % at the end of input: echo it and replay the
			// consumed modifiers as literal text.
			e.sink.Put('%', e.attr)
			return start
		}
		ch := format[i]
		i++
		switch {
		case ch == '-':
			d.pad = '-'
		case ch == '0':
			d.pad = '0'
		case ch >= '1' && ch <= '9':
			n := 0
			for {
				n = n*10 + int(ch-'0')
				if i >= len(format) || format[i] < '0' || format[i] > '9' {
					break
				}
				ch = format[i]
				i++
			}
			if d.width < 0 {
				d.width, d.prec = n, -1
			} else {
				d.prec = n
			}
		case ch == '*':
			n := int(args.signed(0))
			if d.width < 0 {
				d.width, d.prec = n, -1
			} else {
				d.prec = n
			}
		case ch == '.':
			if d.width < 0 {
				d.width = 0
			}
		case ch == '#':
			d.alt = true
		case ch == 'l':
			d.length++
		default:
			return e.convert(ch, format, i, start, args, d)
		}
	}
}

// convert dispatches a resolved conversion character. i points just
// past it; start points just past the introducing '%'.
func (e *engine) convert(ch byte, format string, i, start int, args *argCursor, d directive) int {
	switch ch {
	case 'c':
		e.sink.Put(byte(args.signed(0)), e.attr)

	case 'e':
		code := int(args.signed(0))
		if code < 0 {
			code = -code
		}
		// The nested call is a fresh engine, so the substituted message
		// renders with a clean attribute mask.
		if msg, ok := e.f.Errors.Lookup(code); ok {
			e.f.Format(e.sink, "%s", msg)
		} else {
			e.f.Format(e.sink, "error %d", code)
		}

	case 's':
		s, ok := args.str()
		if !ok {
			s = "(null)"
		}
		e.str(s, d)

	case 'd':
		v := args.signed(d.length)
		if v < 0 {
			e.sink.Put('-', e.attr)
			v = -v
		}
		e.number(uint64(v), 10, d.width, d.pad)

	case 'u':
		e.number(args.unsigned(d.length), 10, d.width, d.pad)

	case 'o':
		e.number(args.unsigned(d.length), 8, d.width, d.pad)

	case 'p':
		// The 0x prefix sits outside the width/pad logic.
		e.sink.Put('0', e.attr)
		e.sink.Put('x', e.attr)
		e.number(args.pointer(), 16, d.width, d.pad)

	case 'x':
		e.number(args.unsigned(d.length), 16, d.width, d.pad)

	case '%':
		e.sink.Put('%', e.attr)

	case 'B':
		return e.adjust(format, i, BgBlue)

	case 'F':
		return e.adjust(format, i, FgBlue)

	case 'C':
		e.attr = 0

	default:
		// Unrecognized conversion: echo the % and replay everything
		// consumed after it as literal text.
		e.sink.Put('%', e.attr)
		return start
	}
	return i
}

// str renders a %s conversion. When the pad character is '-' the
// leading pad is skipped and the trailing space loop fills the
// remaining width, which amounts to left justification for strings.
func (e *engine) str(s string, d directive) {
	n := len(s)
	if d.prec >= 0 && d.prec < n {
		n = d.prec
	}
	width := d.width
	if width > 0 && d.pad != '-' {
		for width -= n; width > 0; width-- {
			e.sink.Put(d.pad, e.attr)
		}
	}
	for j := 0; j < len(s) && (d.prec < 0 || j < d.prec); j++ {
		ch := s[j]
		if d.alt && (ch < ' ' || ch > '~') {
			ch = '?'
		}
		e.sink.Put(ch, e.attr)
		width--
	}
	// Trailing fill is always plain spaces, never the pad character.
	for ; width > 0; width-- {
		e.sink.Put(' ', e.attr)
	}
}

// adjust applies a %B or %F attribute escape. blue is the low color bit
// of the plane being adjusted; uppercase selectors set a bit, lowercase
// clear it, anything else is ignored. Exactly one selector character is
// consumed either way.
func (e *engine) adjust(format string, i int, blue Attr) int {
	if i >= len(format) {
		return i
	}
	switch format[i] {
	case 'B':
		e.attr |= blue
	case 'G':
		e.attr |= blue << 1
	case 'R':
		e.attr |= blue << 2
	case 'I':
		e.attr |= blue << 3
	case 'b':
		e.attr &^= blue
	case 'g':
		e.attr &^= blue << 1
	case 'r':
		e.attr &^= blue << 2
	case 'i':
		e.attr &^= blue << 3
	}
	return i + 1
}
