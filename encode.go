package tmas

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Marshal returns the encoding of records, one line per record, each
// terminated by a newline.
func Marshal[T Record](records []T, f Formatter[T]) ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	if err := NewEncoder(buff, f).EncodeAll(records); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// An Encoder writes records of a single kind to an output stream, one per
// line. Output is buffered; call Flush when done.
type Encoder[T Record] struct {
	w          *bufio.Writer
	f          Formatter[T]
	terminator string
	n          int
}

// NewEncoder returns a new encoder that writes to w, formatting each record
// with f.
func NewEncoder[T Record](w io.Writer, f Formatter[T]) *Encoder[T] {
	return &Encoder[T]{
		w:          bufio.NewWriter(w),
		f:          f,
		terminator: "\n",
	}
}

// SetLineTerminator sets the string written after each line. The default
// is "\n".
func (e *Encoder[T]) SetLineTerminator(s string) {
	e.terminator = s
}

// Encode writes the line for r. Formatting errors are wrapped with the
// 1-based record number and leave the output unchanged.
func (e *Encoder[T]) Encode(r T) error {
	e.n++
	line, err := e.f.Encode(r)
	if err != nil {
		return errors.Wrapf(err, "record %d", e.n)
	}
	if _, err := e.w.WriteString(line); err != nil {
		return err
	}
	_, err = e.w.WriteString(e.terminator)
	return err
}

// EncodeAll writes every record and flushes the output.
func (e *Encoder[T]) EncodeAll(records []T) error {
	for _, r := range records {
		if err := e.Encode(r); err != nil {
			return err
		}
	}
	return e.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder[T]) Flush() error {
	return e.w.Flush()
}
