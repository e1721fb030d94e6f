package tmas

import "strconv"

// field is a named column range within a line. Positions are 1-based and
// the range is inclusive.
type field struct {
	name  string
	start int
	width int
}

func (f field) end() int { return f.start + f.width - 1 }

// slice returns the characters of the field. The caller must have checked
// that the line covers the field.
func (f field) slice(line string) string {
	return line[f.start-1 : f.end()]
}

// bin returns element i of a repeated group whose first element starts at
// start, with elements spaced stride columns apart.
func bin(name string, i, start, stride, width int) field {
	return field{
		name:  name + "[" + strconv.Itoa(i) + "]",
		start: start + i*stride,
		width: width,
	}
}

// requiredLength returns the line length needed to hold count elements of a
// group starting at start with the given stride and element width.
func requiredLength(start, stride, width, count int) int {
	if count <= 0 {
		return start - 1
	}
	return start + (count-1)*stride + width - 1
}
