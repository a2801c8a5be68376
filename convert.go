package optreg

import "strconv"

// Value enumerates the types the conversion helpers know how to produce:
// strings, the integer types, and the floating point types.
type Value interface {
	string |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Convert interprets s as a T. Signed and unsigned integers accept any base
// [strconv] does with base 0 (decimal, 0x, 0o, 0b, leading-zero octal) and
// respect sign; floats are parsed locale-independently; string takes s
// verbatim. Malformed numeric text converts without a reported error to the
// zero value, or to the clamped extreme when the value is out of range for T.
func Convert[T Value](s string) T {
	var v T
	switch p := any(&v).(type) {
	case *string:
		*p = s
	case *int:
		n, _ := strconv.ParseInt(s, 0, strconv.IntSize)
		*p = int(n)
	case *int8:
		n, _ := strconv.ParseInt(s, 0, 8)
		*p = int8(n)
	case *int16:
		n, _ := strconv.ParseInt(s, 0, 16)
		*p = int16(n)
	case *int32:
		n, _ := strconv.ParseInt(s, 0, 32)
		*p = int32(n)
	case *int64:
		*p, _ = strconv.ParseInt(s, 0, 64)
	case *uint:
		n, _ := strconv.ParseUint(s, 0, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		n, _ := strconv.ParseUint(s, 0, 8)
		*p = uint8(n)
	case *uint16:
		n, _ := strconv.ParseUint(s, 0, 16)
		*p = uint16(n)
	case *uint32:
		n, _ := strconv.ParseUint(s, 0, 32)
		*p = uint32(n)
	case *uint64:
		*p, _ = strconv.ParseUint(s, 0, 64)
	case *float32:
		f, _ := strconv.ParseFloat(s, 32)
		*p = float32(f)
	case *float64:
		*p, _ = strconv.ParseFloat(s, 64)
	}
	return v
}

// Set returns a callback converting the flag's argument and storing it in p.
func Set[T Value](p *T) func(string) {
	return func(arg string) { *p = Convert[T](arg) }
}

// Append returns a callback converting the flag's argument and appending it
// to s, preserving occurrence order across repeated flags.
func Append[T Value](s *[]T) func(string) {
	return func(arg string) { *s = append(*s, Convert[T](arg)) }
}

// SetFlag returns a callback for a flag taking no argument that stores v in
// p when the flag is seen, most commonly SetFlag(&b, true).
func SetFlag[T any](p *T, v T) func() {
	return func() { *p = v }
}
