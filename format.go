package tmas

const (
	left  alignment = "left"
	right alignment = "right"
)

const (
	blank = ' '
	zero  = '0'
)

// Space-filled text is left justified; zero-filled numbers and identifiers
// are right justified.
var (
	spaceFilled = format{alignment: left, padChar: blank}
	zeroFilled  = format{alignment: right, padChar: zero}
)

type format struct {
	alignment alignment
	padChar   byte
}

type alignment string

// pad places value in a destination of width columns according to f. The
// value must not be longer than width.
func (f format) pad(dst []byte, value string) {
	n := len(dst) - len(value)
	switch f.alignment {
	case right:
		for i := 0; i < n; i++ {
			dst[i] = f.padChar
		}
		copy(dst[n:], value)
	default:
		copy(dst, value)
		for i := len(value); i < len(dst); i++ {
			dst[i] = f.padChar
		}
	}
}
