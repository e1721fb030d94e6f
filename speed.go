package tmas

import (
	"strconv"
	"time"
)

// MaxSpeedBins is the number of speed bins a speed record can carry.
const MaxSpeedBins = 25

// SpeedData holds vehicle counts by speed range for one interval.
type SpeedData struct {
	State              State
	StationID          string
	Direction          DirectionOfTravel
	Lane               int
	Time               time.Time // start of the hour
	TimeInterval       *TimeInterval
	FirstBinDefinition *int

	// BinCount is the number of speed bins stored on the line, 1 to
	// MaxSpeedBins.
	BinCount    int
	TotalVolume *int
	SpeedBins   [MaxSpeedBins]*int
}

// Kind implements Record.
func (SpeedData) Kind() Kind { return KindSpeed }

// SpeedFormatter formats speed records. The zero value is ready to use.
type SpeedFormatter struct{}

// Kind implements Formatter.
func (SpeedFormatter) Kind() Kind { return KindSpeed }

var speedBinCount = field{"BinCount", 24, 2}

func speedBin(i int) field { return bin("SpeedBins", i, 31, 5, 5) }

// Decode parses a speed line. The bin count is read before the rest of the
// line to find its required length.
func (SpeedFormatter) Decode(line string) (SpeedData, error) {
	l := newRawLine(KindSpeed, line)
	if !l.atLeast(KindSpeed.MinLength()) || !l.discriminator() {
		return SpeedData{}, l.err
	}
	n := l.requiredInt(speedBinCount.name, speedBinCount.start, speedBinCount.width)
	if l.err == nil && (n < 1 || n > MaxSpeedBins) {
		l.fail(speedBinCount, ErrMalformedField)
	}
	if !l.atLeast(requiredLength(31, 5, 5, n)) {
		return SpeedData{}, l.err
	}

	s := SpeedData{
		State:              requireNumberCode[State](l, "State", 2, 2),
		StationID:          l.requiredZeroFilled("StationID", 4, 6),
		Direction:          requireCode[DirectionOfTravel](l, "Direction", 10),
		Lane:               l.digit("Lane", 11),
		Time:               l.dateHour("Time", 12),
		TimeInterval:       readCode[TimeInterval](l, "TimeInterval", 22),
		FirstBinDefinition: l.int("FirstBinDefinition", 23, 1),
		BinCount:           n,
		TotalVolume:        l.int("TotalVolume", 26, 5),
	}
	for i := 0; i < n; i++ {
		s.SpeedBins[i] = l.intField(speedBin(i))
	}

	if l.err != nil {
		return SpeedData{}, l.err
	}
	return s, nil
}

// Encode formats a speed record. A bin past BinCount must be nil.
func (SpeedFormatter) Encode(s SpeedData) (string, error) {
	n := s.BinCount
	if n < 1 || n > MaxSpeedBins {
		return "", unrepresentable(KindSpeed, speedBinCount, strconv.Itoa(n), "must be between 1 and "+strconv.Itoa(MaxSpeedBins))
	}
	b := newLineBuilder(KindSpeed, max(KindSpeed.CanonicalLength(), requiredLength(31, 5, 5, n)))

	writeRequiredNumberCode(b, "State", 2, 2, s.State)
	b.requiredZeroFilled("StationID", 4, 6, s.StationID)
	writeRequiredCode(b, "Direction", 10, s.Direction)
	b.digit("Lane", 11, s.Lane)
	b.dateHour("Time", 12, s.Time)
	writeCode(b, "TimeInterval", 22, s.TimeInterval)
	b.int("FirstBinDefinition", 23, 1, s.FirstBinDefinition)
	b.requiredIntField(speedBinCount, n)
	b.int("TotalVolume", 26, 5, s.TotalVolume)
	for i, v := range s.SpeedBins {
		if i >= n {
			if v != nil {
				b.fail(speedBin(i), strconv.Itoa(*v), "only "+strconv.Itoa(n)+" speed bins are stored")
			}
			continue
		}
		b.intField(speedBin(i), v)
	}

	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}
