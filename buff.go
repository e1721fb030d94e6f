package tmas

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// lineBuilder fills the columns of a line being encoded. The first failure
// is kept in err; once it is set every write is ignored.
type lineBuilder struct {
	kind Kind
	data []byte
	err  error
}

// newLineBuilder makes a blank line of the given length with the kind's
// discriminator in column 1.
func newLineBuilder(kind Kind, length int) *lineBuilder {
	data := make([]byte, length)

	// Fill the buffer with blanks.
	data[0] = blank
	filled := 1
	for filled < length {
		copy(data[filled:], data[:filled])
		filled *= 2
	}
	data[0] = kind.Discriminator()

	return &lineBuilder{kind: kind, data: data}
}

func (b *lineBuilder) String() string {
	return string(b.data)
}

func (b *lineBuilder) fail(f field, value, reason string) {
	if b.err == nil {
		b.err = unrepresentable(b.kind, f, value, reason)
	}
}

func unrepresentable(kind Kind, f field, value, reason string) error {
	return &UnrepresentableValueError{
		Kind:   kind,
		Field:  f.name,
		Start:  f.start,
		End:    f.end(),
		Value:  value,
		Reason: reason,
	}
}

// write places value in f, padded according to fm.
func (b *lineBuilder) write(f field, value string, fm format) {
	if b.err != nil {
		return
	}
	if len(value) > f.width {
		b.fail(f, strconv.Quote(value), "needs "+strconv.Itoa(len(value))+" columns")
		return
	}
	fm.pad(b.data[f.start-1:f.end()], value)
}

func (b *lineBuilder) clear(f field) {
	if b.err != nil {
		return
	}
	spaceFilled.pad(b.data[f.start-1:f.end()], "")
}

func (b *lineBuilder) intField(f field, v *int) {
	if v == nil {
		b.clear(f)
		return
	}
	b.requiredIntField(f, *v)
}

func (b *lineBuilder) int(name string, start, width int, v *int) {
	b.intField(field{name, start, width}, v)
}

func (b *lineBuilder) requiredInt(name string, start, width, v int) {
	b.requiredIntField(field{name, start, width}, v)
}

func (b *lineBuilder) requiredIntField(f field, v int) {
	if v < 0 {
		b.fail(f, strconv.Itoa(v), "negative values have no column form")
		return
	}
	b.write(f, strconv.Itoa(v), zeroFilled)
}

func (b *lineBuilder) digit(name string, start, v int) {
	b.requiredInt(name, start, 1, v)
}

func (b *lineBuilder) string(name string, start, width int, v *string) {
	if v == nil {
		b.clear(field{name, start, width})
		return
	}
	b.requiredString(name, start, width, *v)
}

func (b *lineBuilder) requiredString(name string, start, width int, v string) {
	f := field{name, start, width}
	switch {
	case v == "":
		b.fail(f, `""`, "empty text is indistinguishable from an absent value")
	case strings.Trim(v, " ") != v:
		b.fail(f, strconv.Quote(v), "surrounding blanks are not preserved")
	case !printable(v):
		b.fail(f, strconv.Quote(v), "only printable ASCII is allowed")
	default:
		b.write(f, v, spaceFilled)
	}
}

func (b *lineBuilder) zeroFilled(name string, start, width int, v *string) {
	if v == nil {
		b.clear(field{name, start, width})
		return
	}
	b.requiredZeroFilled(name, start, width, *v)
}

func (b *lineBuilder) requiredZeroFilled(name string, start, width int, v string) {
	f := field{name, start, width}
	switch {
	case strings.HasPrefix(v, "0") || strings.HasPrefix(v, " "):
		b.fail(f, strconv.Quote(v), "leading zeros and blanks are not preserved")
	case !printable(v):
		b.fail(f, strconv.Quote(v), "only printable ASCII is allowed")
	default:
		b.write(f, v, zeroFilled)
	}
}

func (b *lineBuilder) flag(name string, start int, v bool) {
	if b.err != nil {
		return
	}
	c := byte('N')
	if v {
		c = 'Y'
	}
	b.data[start-1] = c
}

// fixedPoint writes an unsigned decimal with shift implied decimal places.
func (b *lineBuilder) fixedPoint(name string, start, width, shift int, v float64) {
	f := field{name, start, width}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		b.fail(f, strconv.FormatFloat(v, 'g', -1, 64), "not a finite number")
		return
	}
	scaled := math.Round(v * math.Pow10(shift))
	if scaled < 0 {
		b.fail(f, strconv.FormatFloat(v, 'f', -1, 64), "negative values have no column form")
		return
	}
	if scaled >= math.Pow10(width) {
		b.fail(f, strconv.FormatFloat(v, 'f', -1, 64), "needs more than "+strconv.Itoa(width)+" digits")
		return
	}
	b.write(f, strconv.FormatInt(int64(scaled), 10), zeroFilled)
}

func (b *lineBuilder) date(name string, start int, t time.Time) {
	f := field{name, start, len(dateLayout)}
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		b.fail(f, t.String(), "time of day has no column form")
		return
	}
	b.time(f, dateLayout, t)
}

func (b *lineBuilder) dateHour(name string, start int, t time.Time) {
	f := field{name, start, len(dateHourLayout)}
	if t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		b.fail(f, t.String(), "only whole hours have a column form")
		return
	}
	b.time(f, dateHourLayout, t)
}

func (b *lineBuilder) time(f field, layout string, t time.Time) {
	if y := t.Year(); y < 0 || y > 9999 {
		b.fail(f, t.String(), "year must be between 0 and 9999")
		return
	}
	b.write(f, t.Format(layout), zeroFilled)
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}

func writeCode[T charCode](b *lineBuilder, name string, start int, v *T) {
	if v == nil {
		b.clear(field{name, start, 1})
		return
	}
	writeRequiredCode(b, name, start, *v)
}

func writeRequiredCode[T charCode](b *lineBuilder, name string, start int, v T) {
	if b.err != nil {
		return
	}
	if !v.Valid() {
		b.fail(field{name, start, 1}, strconv.QuoteRune(rune(v)), "unrecognized code")
		return
	}
	b.data[start-1] = byte(v)
}

func writeNumberCode[T numberCode](b *lineBuilder, name string, start, width int, v *T) {
	if v == nil {
		b.clear(field{name, start, width})
		return
	}
	writeRequiredNumberCode(b, name, start, width, *v)
}

func writeRequiredNumberCode[T numberCode](b *lineBuilder, name string, start, width int, v T) {
	if !v.Valid() {
		b.fail(field{name, start, width}, strconv.Itoa(int(v)), "unrecognized code")
		return
	}
	b.requiredInt(name, start, width, int(v))
}
