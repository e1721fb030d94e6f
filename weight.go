package tmas

import (
	"strconv"
	"time"
)

// MaxAxles is the number of axles a weight record can describe.
const MaxAxles = 13

// WeightData describes a single weighed vehicle.
type WeightData struct {
	State        State
	StationID    string
	Direction    DirectionOfTravel
	Lane         int
	Time         time.Time // start of the hour
	VehicleClass string
	Open         *string
	TotalWeight  int

	// AxleCount is the number of axles stored on the line, 1 to MaxAxles.
	AxleCount int

	// AxleWeights[i] is the weight of axle i+1. AxleSpacings[i] is the
	// distance between axles i+1 and i+2.
	AxleWeights  [MaxAxles]*int
	AxleSpacings [MaxAxles - 1]*int
}

// Kind implements Record.
func (WeightData) Kind() Kind { return KindWeight }

// WeightFormatter formats weight records. The zero value is ready to use.
type WeightFormatter struct{}

// Kind implements Formatter.
func (WeightFormatter) Kind() Kind { return KindWeight }

var weightAxleCount = field{"AxleCount", 33, 2}

func axleWeight(i int) field  { return bin("AxleWeights", i, 35, 10, 5) }
func axleSpacing(i int) field { return bin("AxleSpacings", i, 40, 10, 5) }

// weightLength returns the line length needed for n axles: n weights and
// n-1 spacings interleaved from column 35.
func weightLength(n int) int {
	return requiredLength(35, 10, 5, n)
}

// Decode parses a weight line. The axle count is read before the rest of the
// line to find its required length.
func (WeightFormatter) Decode(line string) (WeightData, error) {
	l := newRawLine(KindWeight, line)
	if !l.atLeast(KindWeight.MinLength()) || !l.discriminator() {
		return WeightData{}, l.err
	}
	n := l.requiredInt(weightAxleCount.name, weightAxleCount.start, weightAxleCount.width)
	if l.err == nil && (n < 1 || n > MaxAxles) {
		l.fail(weightAxleCount, ErrMalformedField)
	}
	if !l.atLeast(weightLength(n)) {
		return WeightData{}, l.err
	}

	w := WeightData{
		State:        requireNumberCode[State](l, "State", 2, 2),
		StationID:    l.requiredZeroFilled("StationID", 4, 6),
		Direction:    requireCode[DirectionOfTravel](l, "Direction", 10),
		Lane:         l.digit("Lane", 11),
		Time:         l.dateHour("Time", 12),
		VehicleClass: l.requiredString("VehicleClass", 22, 2),
		Open:         l.string("Open", 24, 3),
		TotalWeight:  l.requiredInt("TotalWeight", 27, 6),
		AxleCount:    n,
	}
	for i := 0; i < n; i++ {
		w.AxleWeights[i] = l.intField(axleWeight(i))
		if i < n-1 {
			w.AxleSpacings[i] = l.intField(axleSpacing(i))
		}
	}

	if l.err != nil {
		return WeightData{}, l.err
	}
	return w, nil
}

// Encode formats a weight record. Weights past AxleCount, and spacings past
// AxleCount-1, must be nil.
func (WeightFormatter) Encode(w WeightData) (string, error) {
	n := w.AxleCount
	if n < 1 || n > MaxAxles {
		return "", unrepresentable(KindWeight, weightAxleCount, strconv.Itoa(n), "must be between 1 and "+strconv.Itoa(MaxAxles))
	}
	b := newLineBuilder(KindWeight, max(KindWeight.CanonicalLength(), weightLength(n)))

	writeRequiredNumberCode(b, "State", 2, 2, w.State)
	b.requiredZeroFilled("StationID", 4, 6, w.StationID)
	writeRequiredCode(b, "Direction", 10, w.Direction)
	b.digit("Lane", 11, w.Lane)
	b.dateHour("Time", 12, w.Time)
	b.requiredString("VehicleClass", 22, 2, w.VehicleClass)
	b.string("Open", 24, 3, w.Open)
	b.requiredInt("TotalWeight", 27, 6, w.TotalWeight)
	b.requiredIntField(weightAxleCount, n)
	for i, v := range w.AxleWeights {
		b.axle(axleWeight(i), i < n, v, n)
	}
	for i, v := range w.AxleSpacings {
		b.axle(axleSpacing(i), i < n-1, v, n)
	}

	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}

// axle writes v to f when the field is within the record's axle count, and
// otherwise requires v to be nil.
func (b *lineBuilder) axle(f field, stored bool, v *int, n int) {
	if stored {
		b.intField(f, v)
		return
	}
	if v != nil {
		b.fail(f, strconv.Itoa(*v), "record has "+strconv.Itoa(n)+" axles")
	}
}
