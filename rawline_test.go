package tmas

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawLine_read(t *testing.T) {
	const line = "S0042  7AYN0078560 2012042520120425081 "

	l := newRawLine(KindStation, line)
	assert.Equal(t, intp(42), l.int("Int", 2, 4))
	assert.Nil(t, l.int("Blank", 6, 2))
	assert.Equal(t, stringp("7A"), l.string("String", 7, 3))
	assert.Equal(t, true, l.flag("Yes", 10))
	assert.Equal(t, false, l.flag("No", 11))
	assert.Equal(t, 78.56, l.fixedPoint("FixedPoint", 12, 6, 2))
	assert.Equal(t, date(2012, time.April, 25, 0), l.date("Date", 20))
	assert.Equal(t, date(2012, time.April, 25, 8), l.dateHour("DateHour", 28))
	assert.Equal(t, 1, l.digit("Digit", 38))
	assert.Nil(t, readCode[DirectionOfTravel](l, "Code", 39))
	require.NoError(t, l.err)
}

func TestRawLine_zeroFilled(t *testing.T) {
	for _, tt := range []struct {
		name   string
		line   string
		expect *string
	}{
		{"padded", "S00042", stringp("42")},
		{"full", "S1810A", stringp("1810A")},
		{"all zeros", "S00000", stringp("")},
		{"blank", "S     ", nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l := newRawLine(KindStation, tt.line)
			assert.Equal(t, tt.expect, l.zeroFilled("ID", 2, 5))
			assert.NoError(t, l.err)
		})
	}
}

func TestRawLine_errors(t *testing.T) {
	for _, tt := range []struct {
		name  string
		line  string
		read  func(l *rawLine)
		field string
		value string
		cause error
	}{
		{"required blank", "S  ", func(l *rawLine) { l.requiredInt("F", 2, 2) }, "F", "  ", ErrMissingField},
		{"partly blank", "S 1", func(l *rawLine) { l.int("F", 2, 2) }, "F", " 1", ErrMalformedField},
		{"trailing blank", "S1 ", func(l *rawLine) { l.int("F", 2, 2) }, "F", "1 ", ErrMalformedField},
		{"signed", "S-1", func(l *rawLine) { l.int("F", 2, 2) }, "F", "-1", ErrMalformedField},
		{"flag lower case", "Sy", func(l *rawLine) { l.flag("F", 2) }, "F", "y", ErrMalformedField},
		{"flag blank", "S ", func(l *rawLine) { l.flag("F", 2) }, "F", " ", ErrMissingField},
		{"text blank", "S   ", func(l *rawLine) { l.requiredString("F", 2, 3) }, "F", "   ", ErrMissingField},
		{"text control byte", "SA\x00B", func(l *rawLine) { l.string("F", 2, 3) }, "F", "A\x00B", ErrMalformedField},
		{"text outside ascii", "S\xff ", func(l *rawLine) { l.requiredString("F", 2, 2) }, "F", "\xff ", ErrMalformedField},
		{"blank after zeros", "S0 81", func(l *rawLine) { l.zeroFilled("F", 2, 4) }, "F", "0 81", ErrMalformedField},
		{"zeros then blanks", "S00  ", func(l *rawLine) { l.requiredZeroFilled("F", 2, 4) }, "F", "00  ", ErrMalformedField},
		{"zero filled control byte", "S0\x0f1", func(l *rawLine) { l.zeroFilled("F", 2, 3) }, "F", "0\x0f1", ErrMalformedField},
		{"unknown code", "SX", func(l *rawLine) { requireCode[DirectionOfTravel](l, "F", 2) }, "F", "X", ErrUnknownCode},
		{"unknown number code", "S99", func(l *rawLine) { requireNumberCode[State](l, "F", 2, 2) }, "F", "99", ErrUnknownCode},
		{"date blank", "S        ", func(l *rawLine) { l.date("F", 2) }, "F", "        ", ErrMissingField},
		{"date with letters", "S2012O425", func(l *rawLine) { l.date("F", 2) }, "F", "2012O425", ErrMalformedField},
	} {
		t.Run(tt.name, func(t *testing.T) {
			l := newRawLine(KindStation, tt.line)
			tt.read(l)
			var fieldErr *InvalidFieldError
			require.True(t, errors.As(l.err, &fieldErr), "have %v", l.err)
			assert.Equal(t, KindStation, fieldErr.Kind)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.value, fieldErr.Value)
			assert.ErrorIs(t, l.err, tt.cause)
		})
	}

	t.Run("invalid calendar date", func(t *testing.T) {
		l := newRawLine(KindStation, "S20120230")
		assert.True(t, l.date("F", 2).IsZero())
		var fieldErr *InvalidFieldError
		require.True(t, errors.As(l.err, &fieldErr), "have %v", l.err)
		assert.Equal(t, 9, fieldErr.End)
	})
}

func TestRawLine_firstErrorWins(t *testing.T) {
	l := newRawLine(KindVolume, "3  x")
	assert.Nil(t, l.int("A", 2, 2))
	assert.Equal(t, 0, l.requiredInt("B", 2, 2))
	assert.Nil(t, l.int("C", 4, 1))

	var fieldErr *InvalidFieldError
	require.True(t, errors.As(l.err, &fieldErr))
	assert.Equal(t, "B", fieldErr.Field)
}

func TestRawLine_length(t *testing.T) {
	l := newRawLine(KindVolume, "3abc")
	assert.True(t, l.atLeast(4))
	assert.True(t, l.exactly(4))
	assert.True(t, l.discriminator())

	l = newRawLine(KindVolume, "3abc")
	assert.False(t, l.exactly(3))
	var longErr *OverlongRecordError
	require.True(t, errors.As(l.err, &longErr))
	assert.Equal(t, 3, longErr.Required)
	assert.Equal(t, 4, longErr.Actual)

	l = newRawLine(KindVolume, "3abc")
	assert.False(t, l.atLeast(5))
	assert.False(t, l.discriminator())
	var truncErr *TruncatedRecordError
	require.True(t, errors.As(l.err, &truncErr))
	assert.Equal(t, 5, truncErr.Required)
}
