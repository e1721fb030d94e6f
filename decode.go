package tmas

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Unmarshal decodes every line of data with f.
func Unmarshal[T Record](data []byte, f Formatter[T]) ([]T, error) {
	return NewDecoder(bytes.NewReader(data), f).DecodeAll()
}

// A Decoder reads records of a single kind from an input stream, one per
// line.
type Decoder[T Record] struct {
	data *bufio.Reader
	f    Formatter[T]
	line int
	text string
	done bool
}

// NewDecoder returns a new decoder that reads from r and decodes each line
// with f.
func NewDecoder[T Record](r io.Reader, f Formatter[T]) *Decoder[T] {
	return &Decoder[T]{
		data: bufio.NewReader(r),
		f:    f,
	}
}

// Line returns the number of lines read so far.
func (d *Decoder[T]) Line() int { return d.line }

// Text returns the most recent line read, without its terminator.
func (d *Decoder[T]) Text() string { return d.text }

// Decode reads the next line and decodes it. If there is no data remaining,
// Decode returns io.EOF. Decoding errors are wrapped with the 1-based line
// number; use errors.As to reach the underlying error.
func (d *Decoder[T]) Decode() (T, error) {
	var zero T
	line, ok, err := d.readLine()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, io.EOF
	}
	v, err := d.f.Decode(line)
	if err != nil {
		return zero, errors.Wrapf(err, "line %d", d.line)
	}
	return v, nil
}

// DecodeAll decodes the remaining lines of the input.
func (d *Decoder[T]) DecodeAll() ([]T, error) {
	var out []T
	for v, err := range d.All() {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// All returns an iterator over the remaining records. Iteration stops after
// the first error.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := d.Decode()
			if err == io.EOF {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// readLine returns the next line without its terminator. ok is false once
// the input is exhausted. A final empty line is not reported.
func (d *Decoder[T]) readLine() (line string, ok bool, err error) {
	if d.done {
		return "", false, nil
	}
	line, err = d.data.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, errors.Wrapf(err, "line %d", d.line+1)
	}
	if err == io.EOF {
		d.done = true
		if len(line) == 0 {
			// skip last empty lines
			return "", false, nil
		}
	}
	d.line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	d.text = line
	return line, true, nil
}
