// Package tmas encodes and decodes the fixed-column ASCII records used to
// exchange traffic monitoring survey data: station descriptions, hourly
// volumes, vehicle classification, speed, and axle weight records.
//
// Each record occupies a single line. Column positions are 1-based and
// inclusive, and the first column always holds the record's discriminator
// character. Classification, speed, and weight records have a variable
// trailing length driven by a count: the classification grouping supplied
// to the formatter, or the bin and axle counts embedded in the line.
//
// Optional fields are modeled as pointers. A blank (all space) column range
// decodes to nil, while a zero-filled range decodes to a present zero value.
package tmas

// Record is implemented by every record type. The kind identifies the
// record's discriminator character and file extension.
type Record interface {
	Kind() Kind
}

// Formatter converts between a single line and a record of type T.
//
// Decode validates the line's length and discriminator before reading any
// field, and fails with one of the package's error types when the line is
// malformed. Encode returns the line without a line terminator.
//
// Formatters hold only immutable configuration and are safe for concurrent
// use.
type Formatter[T Record] interface {
	Kind() Kind
	Decode(line string) (T, error)
	Encode(record T) (string, error)
}
