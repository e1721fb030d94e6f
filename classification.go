package tmas

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// MaxClassBins is the number of vehicle class bins a classification record
// can carry.
const MaxClassBins = 13

// ClassificationData holds vehicle counts by class for one interval.
type ClassificationData struct {
	State        State
	StationID    string
	Direction    DirectionOfTravel
	Lane         int
	Time         time.Time // start of the hour
	TimeInterval *TimeInterval
	TotalVolume  *int
	Restrictions Restrictions

	// ClassBins[i] counts vehicles of class i+1. Only the first grouping
	// count bins are stored on a line.
	ClassBins [MaxClassBins]*int
}

// Kind implements Record.
func (ClassificationData) Kind() Kind { return KindClassification }

// ClassificationFormatter formats classification records for a fixed number
// of class bins. The zero value uses DefaultGroupings.
type ClassificationFormatter struct {
	groupings ClassificationGroupings
}

// NewClassificationFormatter returns a formatter reading and writing g class
// bins per line.
func NewClassificationFormatter(g ClassificationGroupings) (ClassificationFormatter, error) {
	if !g.Valid() {
		return ClassificationFormatter{}, errors.Errorf("tmas: invalid classification groupings %d", int(g))
	}
	return ClassificationFormatter{groupings: g}, nil
}

// ClassificationFormatterFor returns a formatter using the grouping count the
// station reports, or DefaultGroupings when it reports none.
func ClassificationFormatterFor(s StationDescription) ClassificationFormatter {
	g := s.Groupings()
	if !g.Valid() {
		g = DefaultGroupings
	}
	return ClassificationFormatter{groupings: g}
}

// Kind implements Formatter.
func (ClassificationFormatter) Kind() Kind { return KindClassification }

// Groupings returns the number of class bins per line.
func (f ClassificationFormatter) Groupings() ClassificationGroupings {
	if f.groupings == 0 {
		return DefaultGroupings
	}
	return f.groupings
}

// RequiredLength returns the shortest line holding every class bin.
func (f ClassificationFormatter) RequiredLength() int {
	return requiredLength(29, 5, 5, int(f.Groupings()))
}

func classBin(i int) field { return bin("ClassBins", i, 29, 5, 5) }

// Decode parses a classification line. Bins past the grouping count decode
// as nil, and columns past the last bin are ignored.
func (f ClassificationFormatter) Decode(line string) (ClassificationData, error) {
	l := newRawLine(KindClassification, line)
	if !l.atLeast(KindClassification.MinLength()) || !l.discriminator() || !l.atLeast(f.RequiredLength()) {
		return ClassificationData{}, l.err
	}

	c := ClassificationData{
		State:        requireNumberCode[State](l, "State", 2, 2),
		StationID:    l.requiredZeroFilled("StationID", 4, 6),
		Direction:    requireCode[DirectionOfTravel](l, "Direction", 10),
		Lane:         l.digit("Lane", 11),
		Time:         l.dateHour("Time", 12),
		TimeInterval: readCode[TimeInterval](l, "TimeInterval", 22),
		TotalVolume:  l.int("TotalVolume", 23, 5),
		Restrictions: requireCode[Restrictions](l, "Restrictions", 28),
	}
	for i := 0; i < int(f.Groupings()); i++ {
		c.ClassBins[i] = l.intField(classBin(i))
	}

	if l.err != nil {
		return ClassificationData{}, l.err
	}
	return c, nil
}

// Encode formats a classification record. A bin past the grouping count
// must be nil.
func (f ClassificationFormatter) Encode(c ClassificationData) (string, error) {
	g := int(f.Groupings())
	b := newLineBuilder(KindClassification, max(KindClassification.CanonicalLength(), f.RequiredLength()))

	writeRequiredNumberCode(b, "State", 2, 2, c.State)
	b.requiredZeroFilled("StationID", 4, 6, c.StationID)
	writeRequiredCode(b, "Direction", 10, c.Direction)
	b.digit("Lane", 11, c.Lane)
	b.dateHour("Time", 12, c.Time)
	writeCode(b, "TimeInterval", 22, c.TimeInterval)
	b.int("TotalVolume", 23, 5, c.TotalVolume)
	writeRequiredCode(b, "Restrictions", 28, c.Restrictions)
	for i, n := range c.ClassBins {
		if i >= g {
			if n != nil {
				b.fail(classBin(i), strconv.Itoa(*n), "only "+strconv.Itoa(g)+" class bins are stored")
			}
			continue
		}
		b.intField(classBin(i), n)
	}

	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}
