package tmas

import (
	"strings"
	"time"
)

func intp(v int) *int          { return &v }
func stringp(v string) *string { return &v }

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func pad(s string, n int) string { return s + strings.Repeat(" ", n-len(s)) }

// Station description lines taken from exchange files.
const (
	stationLine1 = "S1701810A9020121R2Y230    0  2L P00000000000000000000000000000000000000000000000867K65T4RE3480078560039178751088352540          2001    035Y000012345000Y0200000404.6 miles east of milepost 105 interchange         "
	stationLine2 = "S1701811B1020121R4Y4323F130  2LLP00000000000000000000000000000000000000000000000880IR5T4RE3480078560039178751088352540          1945    049N            Y0200000708.5 miles past Steven City near County Line Road   "
)

var station1 = StationDescription{
	State:                           StateIllinois,
	StationID:                       "1810A",
	Direction:                       DirectionNSOrNESWCombined,
	Lane:                            0,
	Year:                            2012,
	FunctionalPurpose:               PurposeInterstate,
	FunctionalType:                  TypeRural,
	Lanes:                           2,
	UsedForTMAS:                     true,
	LanesMonitoredForVolume:         2,
	MethodOfVolumeCounting:          VolumeCountingPermanent,
	LanesMonitoredForClassification: 0,
	LanesMonitoredForWeight:         0,
	MethodOfDataRetrieval:           Ptr(RetrievalAutomated),
	SensorType1:                     SensorInductiveLoop,
	PrimaryPurpose:                  StationPlanning,
	LRSRouteID:                      "867K65T4RE348",
	LRSLocation:                     785.6,
	Latitude:                        39.178751,
	Longitude:                       -88.35254,
	YearEstablished:                 intp(2001),
	CountyCode:                      35,
	HPMSSample:                      true,
	HPMSSampleID:                    stringp("12345000"),
	NationalHighwaySystem:           true,
	PostedRouteSigning:              SigningInterstate,
	PostedRouteNumber:               stringp("404"),
	Location:                        stringp(".6 miles east of milepost 105 interchange"),
}

var station2 = StationDescription{
	State:                           StateIllinois,
	StationID:                       "1811B",
	Direction:                       DirectionNorth,
	Lane:                            0,
	Year:                            2012,
	FunctionalPurpose:               PurposeInterstate,
	FunctionalType:                  TypeRural,
	Lanes:                           4,
	UsedForTMAS:                     true,
	LanesMonitoredForVolume:         4,
	MethodOfVolumeCounting:          VolumeCountingPermanent,
	LanesMonitoredForClassification: 2,
	MechanismOfClassification:       Ptr(MechanismPermanent),
	MethodOfClassification:          Ptr(ClassificationAxleSpacingFHWA13),
	ClassificationGroupings:         Ptr(Groupings13),
	LanesMonitoredForWeight:         0,
	MethodOfDataRetrieval:           Ptr(RetrievalAutomated),
	SensorType1:                     SensorInductiveLoop,
	SensorType2:                     Ptr(SensorInductiveLoop),
	PrimaryPurpose:                  StationPlanning,
	LRSRouteID:                      "880IR5T4RE348",
	LRSLocation:                     785.6,
	Latitude:                        39.178751,
	Longitude:                       -88.35254,
	YearEstablished:                 intp(1945),
	CountyCode:                      49,
	HPMSSample:                      false,
	NationalHighwaySystem:           true,
	PostedRouteSigning:              SigningInterstate,
	PostedRouteNumber:               stringp("708"),
	Location:                        stringp(".5 miles past Steven City near County Line Road"),
}

// Hourly volume lines for one station on 2012-04-25.
const (
	volumeLine1 = "3172R01710A90201204254000460002200014000130002900030000750013600179002180026400293003220040100439          003660026100202001430009800054000220"
	volumeLine2 = "3172R018130302012042540000500004000040000200001000010000500003000120001600019000190001900026000190002000015000190001400011000090001300004000020"
	volumeLine3 = "3172R018130702012042540000800001000030000300004000000000000001000040000900019000150001400022000260001500019000110000500016000030001000006000040"
)

// volumes returns hourly counts, with -1 marking an hour without a count.
func volumes(counts ...int) (out [HoursPerDay]*int) {
	for i, n := range counts {
		if n >= 0 {
			out[i] = intp(n)
		}
	}
	return out
}

var volume1 = HourlyTrafficVolume{
	State:             StateIllinois,
	FunctionalPurpose: PurposePrincipalArterial,
	FunctionalType:    TypeRural,
	StationID:         "1710A",
	Direction:         DirectionNSOrNESWCombined,
	Lane:              0,
	Date:              date(2012, time.April, 25, 0),
	Volumes:           volumes(46, 22, 14, 13, 29, 30, 75, 136, 179, 218, 264, 293, 322, 401, 439, -1, -1, 366, 261, 202, 143, 98, 54, 22),
	Restrictions:      RestrictionNone,
}

var volume2 = HourlyTrafficVolume{
	State:             StateIllinois,
	FunctionalPurpose: PurposePrincipalArterial,
	FunctionalType:    TypeRural,
	StationID:         "18130",
	Direction:         DirectionEast,
	Lane:              0,
	Date:              date(2012, time.April, 25, 0),
	Volumes:           volumes(5, 4, 4, 2, 1, 1, 5, 3, 12, 16, 19, 19, 19, 26, 19, 20, 15, 19, 14, 11, 9, 13, 4, 2),
	Restrictions:      RestrictionNone,
}

var volume3 = HourlyTrafficVolume{
	State:             StateIllinois,
	FunctionalPurpose: PurposePrincipalArterial,
	FunctionalType:    TypeRural,
	StationID:         "18130",
	Direction:         DirectionWest,
	Lane:              0,
	Date:              date(2012, time.April, 25, 0),
	Volumes:           volumes(8, 1, 3, 3, 4, 0, 0, 1, 4, 9, 19, 15, 14, 22, 26, 15, 19, 11, 5, 16, 3, 10, 6, 4),
	Restrictions:      RestrictionNone,
}

// classificationLine holds three class bins, for a station reporting
// Groupings3.
var classificationLine = pad("C1701811B112012042500 000990000510004800010", 93)

var classification1 = ClassificationData{
	State:        StateIllinois,
	StationID:    "1811B",
	Direction:    DirectionNorth,
	Lane:         1,
	Time:         date(2012, time.April, 25, 0),
	TotalVolume:  intp(99),
	Restrictions: RestrictionNone,
	ClassBins:    [MaxClassBins]*int{intp(51), intp(48), intp(10)},
}

var speedLine = pad("T17018114112012062000A 1500375000000000000000000000000000000000070001200048001650008600031000210000500000", 155)

var speed1 = SpeedData{
	State:        StateIllinois,
	StationID:    "18114",
	Direction:    DirectionNorth,
	Lane:         1,
	Time:         date(2012, time.June, 20, 0),
	TimeInterval: Ptr(Interval5MinA),
	BinCount:     15,
	TotalVolume:  intp(375),
	SpeedBins: [MaxSpeedBins]*int{
		intp(0), intp(0), intp(0), intp(0), intp(0), intp(0), intp(7), intp(12),
		intp(48), intp(165), intp(86), intp(31), intp(21), intp(5), intp(0),
	},
}

var (
	weightLine1 = pad("W1701811B11201204250809   00072505001020014200165000430015800330001500004100150", 147)
	weightLine2 = pad("W060000425320210301132 ABC00008402000400009600044", 147)
)

var weight1 = WeightData{
	State:        StateIllinois,
	StationID:    "1811B",
	Direction:    DirectionNorth,
	Lane:         1,
	Time:         date(2012, time.April, 25, 8),
	VehicleClass: "09",
	TotalWeight:  725,
	AxleCount:    5,
	AxleWeights:  [MaxAxles]*int{intp(102), intp(165), intp(158), intp(150), intp(150)},
	AxleSpacings: [MaxAxles - 1]*int{intp(142), intp(43), intp(330), intp(41)},
}

var weight2 = WeightData{
	State:        StateCalifornia,
	StationID:    "42",
	Direction:    DirectionSouth,
	Lane:         3,
	Time:         date(2021, time.March, 1, 13),
	VehicleClass: "2",
	Open:         stringp("ABC"),
	TotalWeight:  84,
	AxleCount:    2,
	AxleWeights:  [MaxAxles]*int{intp(40), intp(44)},
	AxleSpacings: [MaxAxles - 1]*int{intp(96)},
}
