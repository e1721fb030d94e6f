package tmas

import (
	"strconv"
	"time"
)

// codeName returns the name of v in names, or a quoted form of the raw code
// when v is outside the domain.
func codeName[T comparable](names map[T]string, v T, raw string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return raw
}

// DirectionOfTravel is the compass direction of the lanes a station
// monitors.
type DirectionOfTravel byte

// DirectionOfTravel codes.
const (
	DirectionNorth            DirectionOfTravel = '1'
	DirectionNortheast        DirectionOfTravel = '2'
	DirectionEast             DirectionOfTravel = '3'
	DirectionSoutheast        DirectionOfTravel = '4'
	DirectionSouth            DirectionOfTravel = '5'
	DirectionSouthwest        DirectionOfTravel = '6'
	DirectionWest             DirectionOfTravel = '7'
	DirectionNorthwest        DirectionOfTravel = '8'
	DirectionNSOrNESWCombined DirectionOfTravel = '9'
	DirectionEWOrSENWCombined DirectionOfTravel = '0'
)

var directionNames = map[DirectionOfTravel]string{
	DirectionNorth:            "north",
	DirectionNortheast:        "northeast",
	DirectionEast:             "east",
	DirectionSoutheast:        "southeast",
	DirectionSouth:            "south",
	DirectionSouthwest:        "southwest",
	DirectionWest:             "west",
	DirectionNorthwest:        "northwest",
	DirectionNSOrNESWCombined: "north-south or northeast-southwest combined",
	DirectionEWOrSENWCombined: "east-west or southeast-northwest combined",
}

// Valid reports whether d is a DirectionOfTravel code.
func (d DirectionOfTravel) Valid() bool { _, ok := directionNames[d]; return ok }

// String returns the name of d, or the raw code when d is not valid.
func (d DirectionOfTravel) String() string {
	return codeName(directionNames, d, strconv.QuoteRune(rune(d)))
}

// MarshalText encodes d as its name.
func (d DirectionOfTravel) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// FunctionalPurpose is the functional classification of the roadway.
type FunctionalPurpose byte

// FunctionalPurpose codes.
const (
	PurposeInterstate             FunctionalPurpose = '1'
	PurposePrincipalArterial      FunctionalPurpose = '2'
	PurposePrincipalArterialOther FunctionalPurpose = '3'
	PurposeMinorArterial          FunctionalPurpose = '4'
	PurposeMajorCollector         FunctionalPurpose = '5'
	PurposeMinorCollector         FunctionalPurpose = '6'
	PurposeLocal                  FunctionalPurpose = '7'
)

var purposeNames = map[FunctionalPurpose]string{
	PurposeInterstate:             "interstate",
	PurposePrincipalArterial:      "principal arterial",
	PurposePrincipalArterialOther: "principal arterial (other)",
	PurposeMinorArterial:          "minor arterial",
	PurposeMajorCollector:         "major collector",
	PurposeMinorCollector:         "minor collector",
	PurposeLocal:                  "local",
}

// Valid reports whether p is a FunctionalPurpose code.
func (p FunctionalPurpose) Valid() bool { _, ok := purposeNames[p]; return ok }

// String returns the name of p, or the raw code when p is not valid.
func (p FunctionalPurpose) String() string {
	return codeName(purposeNames, p, strconv.QuoteRune(rune(p)))
}

// MarshalText encodes p as its name.
func (p FunctionalPurpose) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// FunctionalType distinguishes rural from urban roadways.
type FunctionalType byte

// FunctionalType codes.
const (
	TypeRural FunctionalType = 'R'
	TypeUrban FunctionalType = 'U'
)

var functionalTypeNames = map[FunctionalType]string{
	TypeRural: "rural",
	TypeUrban: "urban",
}

// Valid reports whether t is a FunctionalType code.
func (t FunctionalType) Valid() bool { _, ok := functionalTypeNames[t]; return ok }

// String returns the name of t, or the raw code when t is not valid.
func (t FunctionalType) String() string {
	return codeName(functionalTypeNames, t, strconv.QuoteRune(rune(t)))
}

// MarshalText encodes t as its name.
func (t FunctionalType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// MethodOfVolumeCounting is how a station counts volume.
type MethodOfVolumeCounting byte

// MethodOfVolumeCounting codes.
const (
	VolumeCountingHuman          MethodOfVolumeCounting = '1'
	VolumeCountingPortableDevice MethodOfVolumeCounting = '2'
	VolumeCountingPermanent      MethodOfVolumeCounting = '3'
)

var volumeCountingNames = map[MethodOfVolumeCounting]string{
	VolumeCountingHuman:          "human observation",
	VolumeCountingPortableDevice: "portable device",
	VolumeCountingPermanent:      "permanent device",
}

// Valid reports whether m is a MethodOfVolumeCounting code.
func (m MethodOfVolumeCounting) Valid() bool { _, ok := volumeCountingNames[m]; return ok }

// String returns the name of m, or the raw code when m is not valid.
func (m MethodOfVolumeCounting) String() string {
	return codeName(volumeCountingNames, m, strconv.QuoteRune(rune(m)))
}

// MarshalText encodes m as its name.
func (m MethodOfVolumeCounting) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// MechanismOfClassification is the equipment used for vehicle classification
// or speed.
type MechanismOfClassification byte

// MechanismOfClassification codes.
const (
	MechanismHuman          MechanismOfClassification = '1'
	MechanismPortableDevice MechanismOfClassification = '2'
	MechanismPermanent      MechanismOfClassification = '3'
	MechanismSpeedOnly      MechanismOfClassification = '4'
)

var mechanismNames = map[MechanismOfClassification]string{
	MechanismHuman:          "human observation",
	MechanismPortableDevice: "portable device",
	MechanismPermanent:      "permanent device",
	MechanismSpeedOnly:      "speed only",
}

// Valid reports whether m is a MechanismOfClassification code.
func (m MechanismOfClassification) Valid() bool { _, ok := mechanismNames[m]; return ok }

// String returns the name of m, or the raw code when m is not valid.
func (m MechanismOfClassification) String() string {
	return codeName(mechanismNames, m, strconv.QuoteRune(rune(m)))
}

// MarshalText encodes m as its name.
func (m MechanismOfClassification) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// MethodOfClassification is the algorithm used to assign vehicle classes.
type MethodOfClassification byte

// MethodOfClassification codes.
const (
	ClassificationHumanOnSite              MethodOfClassification = 'A'
	ClassificationHumanImage               MethodOfClassification = 'B'
	ClassificationAutomatedImage           MethodOfClassification = 'C'
	ClassificationVehicleLength            MethodOfClassification = 'D'
	ClassificationAxleSpacingE1572         MethodOfClassification = 'E'
	ClassificationAxleSpacingFHWA13        MethodOfClassification = 'F'
	ClassificationAxleSpacingFHWA13Altered MethodOfClassification = 'G'
	ClassificationSixCategories            MethodOfClassification = 'H'
	ClassificationInductiveOrMagnetic      MethodOfClassification = 'I'
	ClassificationAxleSpacingWeight        MethodOfClassification = 'K'
	ClassificationAxleSpacingLength        MethodOfClassification = 'L'
	ClassificationAxleSpacingWeightLength  MethodOfClassification = 'M'
	ClassificationAxleSpacingOther         MethodOfClassification = 'N'
	ClassificationOtherAxleMethod          MethodOfClassification = 'O'
	ClassificationLTPP                     MethodOfClassification = 'R'
	ClassificationStateSpecific            MethodOfClassification = 'S'
	ClassificationVendor                   MethodOfClassification = 'V'
	ClassificationOther                    MethodOfClassification = 'Z'
)

var classificationMethodNames = map[MethodOfClassification]string{
	ClassificationHumanOnSite:              "human on site",
	ClassificationHumanImage:               "human from image",
	ClassificationAutomatedImage:           "automated image or signature",
	ClassificationVehicleLength:            "vehicle length",
	ClassificationAxleSpacingE1572:         "axle spacing (ASTM E1572)",
	ClassificationAxleSpacingFHWA13:        "axle spacing (FHWA 13)",
	ClassificationAxleSpacingFHWA13Altered: "axle spacing (modified FHWA 13)",
	ClassificationSixCategories:            "six categories",
	ClassificationInductiveOrMagnetic:      "inductive or magnetic signature",
	ClassificationAxleSpacingWeight:        "axle spacing and weight",
	ClassificationAxleSpacingLength:        "axle spacing and length",
	ClassificationAxleSpacingWeightLength:  "axle spacing, weight and length",
	ClassificationAxleSpacingOther:         "axle spacing (other)",
	ClassificationOtherAxleMethod:          "other axle method",
	ClassificationLTPP:                     "LTPP",
	ClassificationStateSpecific:            "state specific",
	ClassificationVendor:                   "vendor",
	ClassificationOther:                    "other",
}

// Valid reports whether m is a MethodOfClassification code.
func (m MethodOfClassification) Valid() bool { _, ok := classificationMethodNames[m]; return ok }

// String returns the name of m, or the raw code when m is not valid.
func (m MethodOfClassification) String() string {
	return codeName(classificationMethodNames, m, strconv.QuoteRune(rune(m)))
}

// MarshalText encodes m as its name.
func (m MethodOfClassification) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ClassificationGroupings is the number of vehicle class bins reported by a
// classification station.
type ClassificationGroupings int

// Supported class bin counts.
const (
	Groupings2  ClassificationGroupings = 2
	Groupings3  ClassificationGroupings = 3
	Groupings4  ClassificationGroupings = 4
	Groupings5  ClassificationGroupings = 5
	Groupings6  ClassificationGroupings = 6
	Groupings7  ClassificationGroupings = 7
	Groupings13 ClassificationGroupings = 13

	// DefaultGroupings is the FHWA 13 vehicle category scheme.
	DefaultGroupings = Groupings13
)

// Valid reports whether g is one of the supported bin counts.
func (g ClassificationGroupings) Valid() bool {
	switch g {
	case Groupings2, Groupings3, Groupings4, Groupings5, Groupings6, Groupings7, Groupings13:
		return true
	}
	return false
}

func (g ClassificationGroupings) String() string { return strconv.Itoa(int(g)) }

// MethodOfTruckWeighing is the equipment used to weigh trucks.
type MethodOfTruckWeighing byte

// MethodOfTruckWeighing codes.
const (
	WeighingPortableScale MethodOfTruckWeighing = '1'
	WeighingTowedScale    MethodOfTruckWeighing = '2'
	WeighingPlatformScale MethodOfTruckWeighing = '3'
	WeighingPortableWIM   MethodOfTruckWeighing = '4'
	WeighingPermanentWIM  MethodOfTruckWeighing = '5'
)

var weighingNames = map[MethodOfTruckWeighing]string{
	WeighingPortableScale: "portable static scale",
	WeighingTowedScale:    "chassis-mounted towed scale",
	WeighingPlatformScale: "platform or static scale",
	WeighingPortableWIM:   "portable weigh-in-motion",
	WeighingPermanentWIM:  "permanent weigh-in-motion",
}

// Valid reports whether m is a MethodOfTruckWeighing code.
func (m MethodOfTruckWeighing) Valid() bool { _, ok := weighingNames[m]; return ok }

// String returns the name of m, or the raw code when m is not valid.
func (m MethodOfTruckWeighing) String() string {
	return codeName(weighingNames, m, strconv.QuoteRune(rune(m)))
}

// MarshalText encodes m as its name.
func (m MethodOfTruckWeighing) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// CalibrationOfWeighing is the calibration procedure of a weighing system.
type CalibrationOfWeighing byte

// CalibrationOfWeighing codes.
const (
	CalibrationE1318            CalibrationOfWeighing = 'A'
	CalibrationE1318Subset      CalibrationOfWeighing = 'B'
	CalibrationTestAndTraffic   CalibrationOfWeighing = 'C'
	CalibrationOtherFromTraffic CalibrationOfWeighing = 'D'
	CalibrationAxleAverage      CalibrationOfWeighing = 'M'
	CalibrationLTPP             CalibrationOfWeighing = 'R'
	CalibrationStatic           CalibrationOfWeighing = 'S'
	CalibrationTestOnly         CalibrationOfWeighing = 'T'
	CalibrationUncalibrated     CalibrationOfWeighing = 'U'
	CalibrationOther            CalibrationOfWeighing = 'Z'
)

var calibrationNames = map[CalibrationOfWeighing]string{
	CalibrationE1318:            "ASTM E1318",
	CalibrationE1318Subset:      "ASTM E1318 subset",
	CalibrationTestAndTraffic:   "test trucks and traffic trucks",
	CalibrationOtherFromTraffic: "other trucks from traffic",
	CalibrationAxleAverage:      "axle average",
	CalibrationLTPP:             "LTPP",
	CalibrationStatic:           "static calibration",
	CalibrationTestOnly:         "test trucks only",
	CalibrationUncalibrated:     "uncalibrated",
	CalibrationOther:            "other",
}

// Valid reports whether c is a CalibrationOfWeighing code.
func (c CalibrationOfWeighing) Valid() bool { _, ok := calibrationNames[c]; return ok }

// String returns the name of c, or the raw code when c is not valid.
func (c CalibrationOfWeighing) String() string {
	return codeName(calibrationNames, c, strconv.QuoteRune(rune(c)))
}

// MarshalText encodes c as its name.
func (c CalibrationOfWeighing) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// MethodOfDataRetrieval is how data leaves a station.
type MethodOfDataRetrieval byte

// MethodOfDataRetrieval codes.
const (
	RetrievalManual    MethodOfDataRetrieval = '1'
	RetrievalAutomated MethodOfDataRetrieval = '2'
)

var retrievalNames = map[MethodOfDataRetrieval]string{
	RetrievalManual:    "manual",
	RetrievalAutomated: "automated",
}

// Valid reports whether m is a MethodOfDataRetrieval code.
func (m MethodOfDataRetrieval) Valid() bool { _, ok := retrievalNames[m]; return ok }

// String returns the name of m, or the raw code when m is not valid.
func (m MethodOfDataRetrieval) String() string {
	return codeName(retrievalNames, m, strconv.QuoteRune(rune(m)))
}

// MarshalText encodes m as its name.
func (m MethodOfDataRetrieval) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// SensorType is the kind of sensor installed at a station.
type SensorType byte

// SensorType codes.
const (
	SensorAVI                 SensorType = 'A'
	SensorBendingPlate        SensorType = 'B'
	SensorCapacitanceStrip    SensorType = 'C'
	SensorCapacitanceMat      SensorType = 'D'
	SensorLoadCells           SensorType = 'E'
	SensorFiberOptic          SensorType = 'F'
	SensorStrainGaugeBridge   SensorType = 'G'
	SensorManual              SensorType = 'H'
	SensorInfrared            SensorType = 'I'
	SensorStrainGaugeInline   SensorType = 'J'
	SensorLaser               SensorType = 'K'
	SensorInductiveLoop       SensorType = 'L'
	SensorMagnetometer        SensorType = 'M'
	SensorPiezoelectric       SensorType = 'P'
	SensorQuartzPiezoelectric SensorType = 'Q'
	SensorRoadTube            SensorType = 'R'
	SensorSonic               SensorType = 'S'
	SensorTapeSwitch          SensorType = 'T'
	SensorUltrasonic          SensorType = 'U'
	SensorVideo               SensorType = 'V'
	SensorMicrowave           SensorType = 'W'
	SensorRadar               SensorType = 'X'
	SensorOther               SensorType = 'Z'
)

var sensorNames = map[SensorType]string{
	SensorAVI:                 "automatic vehicle identification",
	SensorBendingPlate:        "bending plate",
	SensorCapacitanceStrip:    "capacitance strip",
	SensorCapacitanceMat:      "capacitance mat",
	SensorLoadCells:           "load cells",
	SensorFiberOptic:          "fiber optic",
	SensorStrainGaugeBridge:   "strain gauge bridge",
	SensorManual:              "manual",
	SensorInfrared:            "infrared",
	SensorStrainGaugeInline:   "inline strain gauge",
	SensorLaser:               "laser",
	SensorInductiveLoop:       "inductive loop",
	SensorMagnetometer:        "magnetometer",
	SensorPiezoelectric:       "piezoelectric",
	SensorQuartzPiezoelectric: "quartz piezoelectric",
	SensorRoadTube:            "road tube",
	SensorSonic:               "sonic",
	SensorTapeSwitch:          "tape switch",
	SensorUltrasonic:          "ultrasonic",
	SensorVideo:               "video",
	SensorMicrowave:           "microwave",
	SensorRadar:               "radar",
	SensorOther:               "other",
}

// Valid reports whether s is a SensorType code.
func (s SensorType) Valid() bool { _, ok := sensorNames[s]; return ok }

// String returns the name of s, or the raw code when s is not valid.
func (s SensorType) String() string {
	return codeName(sensorNames, s, strconv.QuoteRune(rune(s)))
}

// MarshalText encodes s as its name.
func (s SensorType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// StationPurpose is the primary reason a station was established.
type StationPurpose byte

// StationPurpose codes.
const (
	StationEnforcement     StationPurpose = 'E'
	StationOperationsITS   StationPurpose = 'I'
	StationLoadData        StationPurpose = 'L'
	StationOperationsOther StationPurpose = 'O'
	StationPlanning        StationPurpose = 'P'
	StationResearch        StationPurpose = 'R'
)

var stationPurposeNames = map[StationPurpose]string{
	StationEnforcement:     "enforcement",
	StationOperationsITS:   "operations (ITS)",
	StationLoadData:        "load data",
	StationOperationsOther: "operations (other)",
	StationPlanning:        "planning",
	StationResearch:        "research",
}

// Valid reports whether p is a StationPurpose code.
func (p StationPurpose) Valid() bool { _, ok := stationPurposeNames[p]; return ok }

// String returns the name of p, or the raw code when p is not valid.
func (p StationPurpose) String() string {
	return codeName(stationPurposeNames, p, strconv.QuoteRune(rune(p)))
}

// MarshalText encodes p as its name.
func (p StationPurpose) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// PostedRouteSigning is the signing of the route a station is on.
type PostedRouteSigning int

// PostedRouteSigning codes.
const (
	SigningNotSigned      PostedRouteSigning = 1
	SigningInterstate     PostedRouteSigning = 2
	SigningUS             PostedRouteSigning = 3
	SigningState          PostedRouteSigning = 4
	SigningBusinessMarker PostedRouteSigning = 5
	SigningCounty         PostedRouteSigning = 6
	SigningTownship       PostedRouteSigning = 7
	SigningMunicipal      PostedRouteSigning = 8
	SigningParkway        PostedRouteSigning = 9
	SigningNone           PostedRouteSigning = 10
)

var signingNames = map[PostedRouteSigning]string{
	SigningNotSigned:      "not signed",
	SigningInterstate:     "interstate",
	SigningUS:             "U.S.",
	SigningState:          "state",
	SigningBusinessMarker: "off-interstate business marker",
	SigningCounty:         "county",
	SigningTownship:       "township",
	SigningMunicipal:      "municipal",
	SigningParkway:        "parkway or forest route marker",
	SigningNone:           "none of the above",
}

// Valid reports whether s is a PostedRouteSigning code.
func (s PostedRouteSigning) Valid() bool { _, ok := signingNames[s]; return ok }

// String returns the name of s, or the raw code when s is not valid.
func (s PostedRouteSigning) String() string {
	return codeName(signingNames, s, strconv.Itoa(int(s)))
}

// MarshalText encodes s as its name.
func (s PostedRouteSigning) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Restrictions describes conditions that affected the data collected.
type Restrictions byte

// Restrictions codes.
const (
	RestrictionNone                 Restrictions = '0'
	RestrictionConstructionNoImpact Restrictions = '1'
	RestrictionDeviceProblem        Restrictions = '2'
	RestrictionWeatherNoImpact      Restrictions = '3'
	RestrictionConstructionImpact   Restrictions = '4'
	RestrictionWeatherImpact        Restrictions = '5'
)

var restrictionNames = map[Restrictions]string{
	RestrictionNone:                 "none",
	RestrictionConstructionNoImpact: "construction, no impact",
	RestrictionDeviceProblem:        "device problem",
	RestrictionWeatherNoImpact:      "weather, no impact",
	RestrictionConstructionImpact:   "construction impacted traffic",
	RestrictionWeatherImpact:        "weather impacted traffic",
}

// Valid reports whether r is a Restrictions code.
func (r Restrictions) Valid() bool { _, ok := restrictionNames[r]; return ok }

// String returns the name of r, or the raw code when r is not valid.
func (r Restrictions) String() string {
	return codeName(restrictionNames, r, strconv.QuoteRune(rune(r)))
}

// MarshalText encodes r as its name.
func (r Restrictions) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// TimeInterval identifies the sub-hour interval of a classification or speed
// record. Records for a whole hour leave it absent. Codes 1-4 are 15 minute
// intervals and codes A-L are 5 minute intervals.
type TimeInterval byte

// TimeInterval codes.
const (
	Interval15Min1 TimeInterval = '1'
	Interval15Min2 TimeInterval = '2'
	Interval15Min3 TimeInterval = '3'
	Interval15Min4 TimeInterval = '4'
	Interval5MinA  TimeInterval = 'A'
	Interval5MinB  TimeInterval = 'B'
	Interval5MinC  TimeInterval = 'C'
	Interval5MinD  TimeInterval = 'D'
	Interval5MinE  TimeInterval = 'E'
	Interval5MinF  TimeInterval = 'F'
	Interval5MinG  TimeInterval = 'G'
	Interval5MinH  TimeInterval = 'H'
	Interval5MinI  TimeInterval = 'I'
	Interval5MinJ  TimeInterval = 'J'
	Interval5MinK  TimeInterval = 'K'
	Interval5MinL  TimeInterval = 'L'
)

// Valid reports whether t is one of the interval codes.
func (t TimeInterval) Valid() bool {
	return ('1' <= t && t <= '4') || ('A' <= t && t <= 'L')
}

// Offset returns the start of the interval within its hour.
func (t TimeInterval) Offset() time.Duration {
	switch {
	case '1' <= t && t <= '4':
		return time.Duration(t-'1') * 15 * time.Minute
	case 'A' <= t && t <= 'L':
		return time.Duration(t-'A') * 5 * time.Minute
	}
	return 0
}

// String returns the interval code, quoted when t is not valid.
func (t TimeInterval) String() string {
	if !t.Valid() {
		return strconv.QuoteRune(rune(t))
	}
	return string(rune(t))
}

// MarshalText encodes t as its name.
func (t TimeInterval) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
