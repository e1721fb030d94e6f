package tmas

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout     = "20060102"
	dateHourLayout = "2006010215"
)

// rawLine reads typed fields out of a line being decoded. The first failure
// is kept in err; once it is set every read returns the zero value.
type rawLine struct {
	kind Kind
	data string
	err  error
}

func newRawLine(kind Kind, data string) *rawLine {
	return &rawLine{kind: kind, data: data}
}

// atLeast checks that the line has at least n columns.
func (l *rawLine) atLeast(n int) bool {
	if l.err != nil {
		return false
	}
	if len(l.data) < n {
		l.err = &TruncatedRecordError{Kind: l.kind, Required: n, Actual: len(l.data)}
		return false
	}
	return true
}

// exactly checks that the line has exactly n columns.
func (l *rawLine) exactly(n int) bool {
	if !l.atLeast(n) {
		return false
	}
	if len(l.data) > n {
		l.err = &OverlongRecordError{Kind: l.kind, Required: n, Actual: len(l.data)}
		return false
	}
	return true
}

// discriminator checks column 1 against the kind's discriminator. The line
// must be at least one column long.
func (l *rawLine) discriminator() bool {
	if l.err != nil {
		return false
	}
	if want := l.kind.Discriminator(); l.data[0] != want {
		l.err = &UnexpectedRecordKindError{Kind: l.kind, Want: want, Have: l.data[0]}
		return false
	}
	return true
}

func (l *rawLine) fail(f field, cause error) {
	if l.err == nil {
		l.err = &InvalidFieldError{
			Kind:  l.kind,
			Field: f.name,
			Start: f.start,
			End:   f.end(),
			Value: f.slice(l.data),
			Err:   cause,
		}
	}
}

func (l *rawLine) missing(f field) { l.fail(f, ErrMissingField) }

// raw returns the characters of f and whether the field holds a value. A
// field whose first column is blank is absent, and must then be blank
// throughout.
func (l *rawLine) raw(f field) (string, bool) {
	if l.err != nil {
		return "", false
	}
	s := f.slice(l.data)
	if s[0] != blank {
		return s, true
	}
	if strings.Trim(s, " ") != "" {
		l.fail(f, ErrMalformedField)
	}
	return "", false
}

func (l *rawLine) intField(f field) *int {
	s, ok := l.raw(f)
	if !ok {
		return nil
	}
	n, err := parseDigits(s)
	if err != nil {
		l.fail(f, err)
		return nil
	}
	return &n
}

func (l *rawLine) int(name string, start, width int) *int {
	return l.intField(field{name, start, width})
}

func (l *rawLine) requiredInt(name string, start, width int) int {
	f := field{name, start, width}
	v := l.intField(f)
	if v == nil {
		l.missing(f)
		return 0
	}
	return *v
}

// digit reads a required single digit.
func (l *rawLine) digit(name string, start int) int {
	return l.requiredInt(name, start, 1)
}

// string reads space-filled text, trimming surrounding blanks. All blank
// text is absent. Text must be printable ASCII.
func (l *rawLine) string(name string, start, width int) *string {
	if l.err != nil {
		return nil
	}
	f := field{name, start, width}
	s := strings.Trim(f.slice(l.data), " ")
	if s == "" {
		return nil
	}
	if !printable(s) {
		l.fail(f, ErrMalformedField)
		return nil
	}
	return &s
}

func (l *rawLine) requiredString(name string, start, width int) string {
	v := l.string(name, start, width)
	if v == nil {
		l.missing(field{name, start, width})
		return ""
	}
	return *v
}

// zeroFilled reads a right justified identifier padded with zeros. The
// padding is stripped, so a field of all zeros is present and empty. A blank
// may not follow the padding.
func (l *rawLine) zeroFilled(name string, start, width int) *string {
	f := field{name, start, width}
	s, ok := l.raw(f)
	if !ok {
		return nil
	}
	s = strings.TrimLeft(s, "0")
	if strings.HasPrefix(s, " ") || !printable(s) {
		l.fail(f, ErrMalformedField)
		return nil
	}
	return &s
}

func (l *rawLine) requiredZeroFilled(name string, start, width int) string {
	v := l.zeroFilled(name, start, width)
	if v == nil {
		l.missing(field{name, start, width})
		return ""
	}
	return *v
}

// flag reads a required Y/N indicator.
func (l *rawLine) flag(name string, start int) bool {
	f := field{name, start, 1}
	s, ok := l.raw(f)
	if !ok {
		l.missing(f)
		return false
	}
	switch s[0] {
	case 'Y':
		return true
	case 'N':
		return false
	}
	l.fail(f, ErrMalformedField)
	return false
}

// fixedPoint reads a required unsigned decimal with shift implied decimal
// places.
func (l *rawLine) fixedPoint(name string, start, width, shift int) float64 {
	n := l.requiredInt(name, start, width)
	return float64(n) / math.Pow10(shift)
}

func (l *rawLine) date(name string, start int) time.Time {
	return l.time(field{name, start, len(dateLayout)}, dateLayout)
}

func (l *rawLine) dateHour(name string, start int) time.Time {
	return l.time(field{name, start, len(dateHourLayout)}, dateHourLayout)
}

func (l *rawLine) time(f field, layout string) time.Time {
	s, ok := l.raw(f)
	if !ok {
		l.missing(f)
		return time.Time{}
	}
	if _, err := parseDigits(s); err != nil {
		l.fail(f, err)
		return time.Time{}
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		l.fail(f, err)
		return time.Time{}
	}
	return t
}

// parseDigits parses an unsigned base-10 integer made only of digits.
func parseDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrMalformedField
		}
	}
	return strconv.Atoi(s)
}

// charCode is a single column coded domain.
type charCode interface {
	~byte
	Valid() bool
}

// numberCode is a zero-filled numeric coded domain.
type numberCode interface {
	~int
	Valid() bool
}

func readCode[T charCode](l *rawLine, name string, start int) *T {
	f := field{name, start, 1}
	s, ok := l.raw(f)
	if !ok {
		return nil
	}
	v := T(s[0])
	if !v.Valid() {
		l.fail(f, ErrUnknownCode)
		return nil
	}
	return &v
}

func requireCode[T charCode](l *rawLine, name string, start int) T {
	v := readCode[T](l, name, start)
	if v == nil {
		l.missing(field{name, start, 1})
		var zero T
		return zero
	}
	return *v
}

func readNumberCode[T numberCode](l *rawLine, name string, start, width int) *T {
	f := field{name, start, width}
	n := l.intField(f)
	if n == nil {
		return nil
	}
	v := T(*n)
	if !v.Valid() {
		l.fail(f, ErrUnknownCode)
		return nil
	}
	return &v
}

func requireNumberCode[T numberCode](l *rawLine, name string, start, width int) T {
	v := readNumberCode[T](l, name, start, width)
	if v == nil {
		l.missing(field{name, start, width})
		var zero T
		return zero
	}
	return *v
}
