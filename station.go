package tmas

// StationDescription describes a permanent or portable count station.
type StationDescription struct {
	State                           State
	StationID                       string
	Direction                       DirectionOfTravel
	Lane                            int
	Year                            int
	FunctionalPurpose               FunctionalPurpose
	FunctionalType                  FunctionalType
	Lanes                           int
	UsedForTMAS                     bool
	LanesMonitoredForVolume         int
	MethodOfVolumeCounting          MethodOfVolumeCounting
	LanesMonitoredForClassification int
	MechanismOfClassification       *MechanismOfClassification
	MethodOfClassification          *MethodOfClassification
	ClassificationGroupings         *ClassificationGroupings
	LanesMonitoredForWeight         int
	MethodOfTruckWeighing           *MethodOfTruckWeighing
	CalibrationOfWeighing           *CalibrationOfWeighing
	MethodOfDataRetrieval           *MethodOfDataRetrieval
	SensorType1                     SensorType
	SensorType2                     *SensorType
	PrimaryPurpose                  StationPurpose
	LRSRouteID                      string
	LRSLocation                     float64 // miles, three decimal places
	Latitude                        float64 // degrees north, six decimal places
	Longitude                       float64 // degrees, negative west, six decimal places
	LTPPSiteID                      *string
	PreviousStationID               *string
	YearEstablished                 *int
	YearDiscontinued                *int
	CountyCode                      int
	HPMSSample                      bool
	HPMSSampleID                    *string
	NationalHighwaySystem           bool
	PostedRouteSigning              PostedRouteSigning
	PostedRouteNumber               *string
	Location                        *string
}

// Kind implements Record.
func (StationDescription) Kind() Kind { return KindStation }

// Groupings returns the station's classification grouping count, or
// DefaultGroupings when the station does not report one.
func (s StationDescription) Groupings() ClassificationGroupings {
	if s.ClassificationGroupings == nil {
		return DefaultGroupings
	}
	return *s.ClassificationGroupings
}

// StationFormatter formats station description records. The zero value is
// ready to use.
type StationFormatter struct{}

// Kind implements Formatter.
func (StationFormatter) Kind() Kind { return KindStation }

// Decode parses a station description line.
func (StationFormatter) Decode(line string) (StationDescription, error) {
	l := newRawLine(KindStation, line)
	if !l.exactly(KindStation.MinLength()) || !l.discriminator() {
		return StationDescription{}, l.err
	}

	s := StationDescription{
		State:                           requireNumberCode[State](l, "State", 2, 2),
		StationID:                       l.requiredZeroFilled("StationID", 4, 6),
		Direction:                       requireCode[DirectionOfTravel](l, "Direction", 10),
		Lane:                            l.digit("Lane", 11),
		Year:                            l.requiredInt("Year", 12, 4),
		FunctionalPurpose:               requireCode[FunctionalPurpose](l, "FunctionalPurpose", 16),
		FunctionalType:                  requireCode[FunctionalType](l, "FunctionalType", 17),
		Lanes:                           l.digit("Lanes", 18),
		UsedForTMAS:                     l.flag("UsedForTMAS", 19),
		LanesMonitoredForVolume:         l.digit("LanesMonitoredForVolume", 20),
		MethodOfVolumeCounting:          requireCode[MethodOfVolumeCounting](l, "MethodOfVolumeCounting", 21),
		LanesMonitoredForClassification: l.digit("LanesMonitoredForClassification", 22),
		MechanismOfClassification:       readCode[MechanismOfClassification](l, "MechanismOfClassification", 23),
		MethodOfClassification:          readCode[MethodOfClassification](l, "MethodOfClassification", 24),
		ClassificationGroupings:         readNumberCode[ClassificationGroupings](l, "ClassificationGroupings", 25, 2),
		LanesMonitoredForWeight:         l.digit("LanesMonitoredForWeight", 27),
		MethodOfTruckWeighing:           readCode[MethodOfTruckWeighing](l, "MethodOfTruckWeighing", 28),
		CalibrationOfWeighing:           readCode[CalibrationOfWeighing](l, "CalibrationOfWeighing", 29),
		MethodOfDataRetrieval:           readCode[MethodOfDataRetrieval](l, "MethodOfDataRetrieval", 30),
		SensorType1:                     requireCode[SensorType](l, "SensorType1", 31),
		SensorType2:                     readCode[SensorType](l, "SensorType2", 32),
		PrimaryPurpose:                  requireCode[StationPurpose](l, "PrimaryPurpose", 33),
		LRSRouteID:                      l.requiredZeroFilled("LRSRouteID", 34, 60),
		LRSLocation:                     l.fixedPoint("LRSLocation", 94, 8, 3),
		Latitude:                        l.fixedPoint("Latitude", 102, 8, 6),
		Longitude:                       -l.fixedPoint("Longitude", 110, 9, 6),
		LTPPSiteID:                      l.string("LTPPSiteID", 119, 4),
		PreviousStationID:               l.zeroFilled("PreviousStationID", 123, 6),
		YearEstablished:                 l.int("YearEstablished", 129, 4),
		YearDiscontinued:                l.int("YearDiscontinued", 133, 4),
		CountyCode:                      l.requiredInt("CountyCode", 137, 3),
		HPMSSample:                      l.flag("HPMSSample", 140),
		HPMSSampleID:                    l.zeroFilled("HPMSSampleID", 141, 12),
		NationalHighwaySystem:           l.flag("NationalHighwaySystem", 153),
		PostedRouteSigning:              requireNumberCode[PostedRouteSigning](l, "PostedRouteSigning", 154, 2),
		PostedRouteNumber:               l.zeroFilled("PostedRouteNumber", 156, 8),
		Location:                        l.string("Location", 164, 50),
	}
	if l.err != nil {
		return StationDescription{}, l.err
	}
	return s, nil
}

// Encode formats a station description as a 213 column line.
func (StationFormatter) Encode(s StationDescription) (string, error) {
	b := newLineBuilder(KindStation, KindStation.CanonicalLength())

	writeRequiredNumberCode(b, "State", 2, 2, s.State)
	b.requiredZeroFilled("StationID", 4, 6, s.StationID)
	writeRequiredCode(b, "Direction", 10, s.Direction)
	b.digit("Lane", 11, s.Lane)
	b.requiredInt("Year", 12, 4, s.Year)
	writeRequiredCode(b, "FunctionalPurpose", 16, s.FunctionalPurpose)
	writeRequiredCode(b, "FunctionalType", 17, s.FunctionalType)
	b.digit("Lanes", 18, s.Lanes)
	b.flag("UsedForTMAS", 19, s.UsedForTMAS)
	b.digit("LanesMonitoredForVolume", 20, s.LanesMonitoredForVolume)
	writeRequiredCode(b, "MethodOfVolumeCounting", 21, s.MethodOfVolumeCounting)
	b.digit("LanesMonitoredForClassification", 22, s.LanesMonitoredForClassification)
	writeCode(b, "MechanismOfClassification", 23, s.MechanismOfClassification)
	writeCode(b, "MethodOfClassification", 24, s.MethodOfClassification)
	writeNumberCode(b, "ClassificationGroupings", 25, 2, s.ClassificationGroupings)
	b.digit("LanesMonitoredForWeight", 27, s.LanesMonitoredForWeight)
	writeCode(b, "MethodOfTruckWeighing", 28, s.MethodOfTruckWeighing)
	writeCode(b, "CalibrationOfWeighing", 29, s.CalibrationOfWeighing)
	writeCode(b, "MethodOfDataRetrieval", 30, s.MethodOfDataRetrieval)
	writeRequiredCode(b, "SensorType1", 31, s.SensorType1)
	writeCode(b, "SensorType2", 32, s.SensorType2)
	writeRequiredCode(b, "PrimaryPurpose", 33, s.PrimaryPurpose)
	b.requiredZeroFilled("LRSRouteID", 34, 60, s.LRSRouteID)
	b.fixedPoint("LRSLocation", 94, 8, 3, s.LRSLocation)
	b.fixedPoint("Latitude", 102, 8, 6, s.Latitude)
	b.fixedPoint("Longitude", 110, 9, 6, -s.Longitude)
	b.string("LTPPSiteID", 119, 4, s.LTPPSiteID)
	b.zeroFilled("PreviousStationID", 123, 6, s.PreviousStationID)
	b.int("YearEstablished", 129, 4, s.YearEstablished)
	b.int("YearDiscontinued", 133, 4, s.YearDiscontinued)
	b.requiredInt("CountyCode", 137, 3, s.CountyCode)
	b.flag("HPMSSample", 140, s.HPMSSample)
	b.zeroFilled("HPMSSampleID", 141, 12, s.HPMSSampleID)
	b.flag("NationalHighwaySystem", 153, s.NationalHighwaySystem)
	writeRequiredNumberCode(b, "PostedRouteSigning", 154, 2, s.PostedRouteSigning)
	b.zeroFilled("PostedRouteNumber", 156, 8, s.PostedRouteNumber)
	b.string("Location", 164, 50, s.Location)

	if b.err != nil {
		return "", b.err
	}
	return b.String(), nil
}
