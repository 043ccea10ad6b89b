package attrfmt

import "reflect"

// argCursor walks the caller-supplied argument sequence in order. It is
// the explicit rendition of a varargs list: each conversion pulls the
// next value and coerces it to the width declared by the length
// modifier. A declared width that disagrees with the supplied value is
// the caller's problem; the cursor narrows or zero-fills without
// complaint so the engine never faults mid-format.
type argCursor struct {
	args []any
	pos  int
}

func (c *argCursor) next() (any, bool) {
	if c.pos >= len(c.args) {
		return nil, false
	}
	a := c.args[c.pos]
	c.pos++
	return a, true
}

// unsigned pulls the next argument as an unsigned integer of the tier
// selected by the length count: 0 is the 32-bit tier, one or more l's
// the 64-bit tier. Missing or non-numeric arguments read as zero.
func (c *argCursor) unsigned(length int) uint64 {
	a, ok := c.next()
	if !ok {
		return 0
	}
	v := asUint64(a)
	if length == 0 {
		return uint64(uint32(v))
	}
	return v
}

// signed is the sign-extending counterpart of unsigned. It is not
// derived from the unsigned path because narrowing must preserve the
// sign bit.
func (c *argCursor) signed(length int) int64 {
	a, ok := c.next()
	if !ok {
		return 0
	}
	v := asInt64(a)
	if length == 0 {
		return int64(int32(v))
	}
	return v
}

// str pulls the next argument as a string. ok is false when the
// argument is missing, nil, or not string-shaped; the engine then
// substitutes "(null)".
func (c *argCursor) str() (string, bool) {
	a, ok := c.next()
	if !ok || a == nil {
		return "", false
	}
	switch v := a.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	if s, ok := a.(interface{ String() string }); ok {
		return s.String(), true
	}
	return "", false
}

// pointer pulls the next argument and reduces it to its address bits
// for %p. Plain integers pass through so callers can format a known
// address value directly.
func (c *argCursor) pointer() uint64 {
	a, ok := c.next()
	if !ok || a == nil {
		return 0
	}
	if v, ok := a.(uintptr); ok {
		return uint64(v)
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice:
		return uint64(rv.Pointer())
	}
	return asUint64(a)
}

func asUint64(a any) uint64 {
	switch v := a.(type) {
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case uintptr:
		return uint64(v)
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	}
	return 0
}

func asInt64(a any) int64 {
	switch v := a.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case uintptr:
		return int64(v)
	}
	return 0
}
