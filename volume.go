package tmas

import "time"

// HoursPerDay is the number of hourly volume counts in a volume record.
const HoursPerDay = 24

// HourlyTrafficVolume holds one day of hourly counts for a station lane.
type HourlyTrafficVolume struct {
	State             State
	FunctionalPurpose FunctionalPurpose
	FunctionalType    FunctionalType
	StationID         string
	Direction         DirectionOfTravel
	Lane              int
	Date              time.Time

	// Volumes[h] counts vehicles in the hour starting at h:00. Nil marks an
	// hour with no count.
	Volumes      [HoursPerDay]*int
	Restrictions Restrictions
}

// Kind implements Record.
func (HourlyTrafficVolume) Kind() Kind { return KindVolume }

// DayOfWeek returns the weekday of the record's date.
func (v HourlyTrafficVolume) DayOfWeek() time.Weekday { return v.Date.Weekday() }

// VolumeFormatter formats hourly traffic volume records. The zero value is
// ready to use.
type VolumeFormatter struct{}

// Kind implements Formatter.
func (VolumeFormatter) Kind() Kind { return KindVolume }

// Decode parses an hourly volume line. The day of week column is not read;
// DayOfWeek derives it from the date.
func (VolumeFormatter) Decode(line string) (HourlyTrafficVolume, error) {
	l := newRawLine(KindVolume, line)
	if !l.exactly(KindVolume.MinLength()) || !l.discriminator() {
		return HourlyTrafficVolume{}, l.err
	}

	v := HourlyTrafficVolume{
		State:             requireNumberCode[State](l, "State", 2, 2),
		FunctionalPurpose: requireCode[FunctionalPurpose](l, "FunctionalPurpose", 4),
		FunctionalType:    requireCode[FunctionalType](l, "FunctionalType", 5),
		StationID:         l.requiredZeroFilled("StationID", 6, 6),
		Direction:         requireCode[DirectionOfTravel](l, "Direction", 12),
		Lane:              l.digit("Lane", 13),
		Date:              l.date("Date", 14),
	}
	for h := range v.Volumes {
		v.Volumes[h] = l.intField(bin("Volumes", h, 23, 5, 5))
	}
	v.Restrictions = requireCode[Restrictions](l, "Restrictions", 143)

	if l.err != nil {
		return HourlyTrafficVolume{}, l.err
	}
	return v, nil
}

// Encode formats an hourly volume record as a 143 column line. The day of
// week column is written from the date, Sunday as 1.
func (VolumeFormatter) Encode(v HourlyTrafficVolume) (string, error) {
	b := newLineBuilder(KindVolume, KindVolume.CanonicalLength())

	writeRequiredNumberCode(b, "State", 2, 2, v.State)
	writeRequiredCode(b, "FunctionalPurpose", 4, v.FunctionalPurpose)
	writeRequiredCode(b, "FunctionalType", 5, v.FunctionalType)
	b.requiredZeroFilled("StationID", 6, 6, v.StationID)
	writeRequiredCode(b, "Direction", 12, v.Direction)
	b.digit("Lane", 13, v.Lane)
	b.date("Date", 14, v.Date)
	b.digit("DayOfWeek", 22, int(v.DayOfWeek())+1)
	for h, n := range v.Volumes {
		b.intField(bin("Volumes", h, 23, 5, 5), n)
	}
	writeRequiredCode(b, "Restrictions", 143, v.Restrictions)

	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}
