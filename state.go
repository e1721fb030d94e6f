package tmas

import "strconv"

// State is the two digit FIPS code of a U.S. state or territory, or of a
// Canadian province.
type State int

const (
	StateAlabama                State = 1
	StateAlaska                 State = 2
	StateArizona                State = 4
	StateArkansas               State = 5
	StateCalifornia             State = 6
	StateColorado               State = 8
	StateConnecticut            State = 9
	StateDelaware               State = 10
	StateDC                     State = 11
	StateFlorida                State = 12
	StateGeorgia                State = 13
	StateHawaii                 State = 15
	StateIdaho                  State = 16
	StateIllinois               State = 17
	StateIndiana                State = 18
	StateIowa                   State = 19
	StateKansas                 State = 20
	StateKentucky               State = 21
	StateLouisiana              State = 22
	StateMaine                  State = 23
	StateMaryland               State = 24
	StateMassachusetts          State = 25
	StateMichigan               State = 26
	StateMinnesota              State = 27
	StateMississippi            State = 28
	StateMissouri               State = 29
	StateMontana                State = 30
	StateNebraska               State = 31
	StateNevada                 State = 32
	StateNewHampshire           State = 33
	StateNewJersey              State = 34
	StateNewMexico              State = 35
	StateNewYork                State = 36
	StateNorthCarolina          State = 37
	StateNorthDakota            State = 38
	StateOhio                   State = 39
	StateOklahoma               State = 40
	StateOregon                 State = 41
	StatePennsylvania           State = 42
	StateRhodeIsland            State = 44
	StateSouthCarolina          State = 45
	StateSouthDakota            State = 46
	StateTennessee              State = 47
	StateTexas                  State = 48
	StateUtah                   State = 49
	StateVermont                State = 50
	StateVirginia               State = 51
	StateWashington             State = 53
	StateWestVirginia           State = 54
	StateWisconsin              State = 55
	StateWyoming                State = 56
	StatePuertoRico             State = 72
	StateAmericanSamoa          State = 60
	StateGuam                   State = 66
	StateNorthernMarianaIslands State = 69
	StateVirginIslands          State = 78
	StateAlberta                State = 81
	StateBritishColumbia        State = 82
	StateManitoba               State = 83
	StateNewBrunswick           State = 84
	StateNewfoundland           State = 85
	StateNovaScotia             State = 86
	StateOntario                State = 87
	StatePrinceEdwardIsland     State = 88
	StateQuebec                 State = 89
	StateSaskatchewan           State = 90
	StateYukon                  State = 91
	StateNorthwestTerritory     State = 92
	StateLabrador               State = 93
	StateNunavut                State = 94
)

var stateNames = map[State]string{
	StateAlabama:                "Alabama",
	StateAlaska:                 "Alaska",
	StateArizona:                "Arizona",
	StateArkansas:               "Arkansas",
	StateCalifornia:             "California",
	StateColorado:               "Colorado",
	StateConnecticut:            "Connecticut",
	StateDelaware:               "Delaware",
	StateDC:                     "District of Columbia",
	StateFlorida:                "Florida",
	StateGeorgia:                "Georgia",
	StateHawaii:                 "Hawaii",
	StateIdaho:                  "Idaho",
	StateIllinois:               "Illinois",
	StateIndiana:                "Indiana",
	StateIowa:                   "Iowa",
	StateKansas:                 "Kansas",
	StateKentucky:               "Kentucky",
	StateLouisiana:              "Louisiana",
	StateMaine:                  "Maine",
	StateMaryland:               "Maryland",
	StateMassachusetts:          "Massachusetts",
	StateMichigan:               "Michigan",
	StateMinnesota:              "Minnesota",
	StateMississippi:            "Mississippi",
	StateMissouri:               "Missouri",
	StateMontana:                "Montana",
	StateNebraska:               "Nebraska",
	StateNevada:                 "Nevada",
	StateNewHampshire:           "New Hampshire",
	StateNewJersey:              "New Jersey",
	StateNewMexico:              "New Mexico",
	StateNewYork:                "New York",
	StateNorthCarolina:          "North Carolina",
	StateNorthDakota:            "North Dakota",
	StateOhio:                   "Ohio",
	StateOklahoma:               "Oklahoma",
	StateOregon:                 "Oregon",
	StatePennsylvania:           "Pennsylvania",
	StateRhodeIsland:            "Rhode Island",
	StateSouthCarolina:          "South Carolina",
	StateSouthDakota:            "South Dakota",
	StateTennessee:              "Tennessee",
	StateTexas:                  "Texas",
	StateUtah:                   "Utah",
	StateVermont:                "Vermont",
	StateVirginia:               "Virginia",
	StateWashington:             "Washington",
	StateWestVirginia:           "West Virginia",
	StateWisconsin:              "Wisconsin",
	StateWyoming:                "Wyoming",
	StatePuertoRico:             "Puerto Rico",
	StateAmericanSamoa:          "American Samoa",
	StateGuam:                   "Guam",
	StateNorthernMarianaIslands: "Northern Mariana Islands",
	StateVirginIslands:          "U.S. Virgin Islands",
	StateAlberta:                "Alberta",
	StateBritishColumbia:        "British Columbia",
	StateManitoba:               "Manitoba",
	StateNewBrunswick:           "New Brunswick",
	StateNewfoundland:           "Newfoundland",
	StateNovaScotia:             "Nova Scotia",
	StateOntario:                "Ontario",
	StatePrinceEdwardIsland:     "Prince Edward Island",
	StateQuebec:                 "Quebec",
	StateSaskatchewan:           "Saskatchewan",
	StateYukon:                  "Yukon",
	StateNorthwestTerritory:     "Northwest Territories",
	StateLabrador:               "Labrador",
	StateNunavut:                "Nunavut",
}

func (s State) Valid() bool { _, ok := stateNames[s]; return ok }

func (s State) String() string {
	return codeName(stateNames, s, strconv.Itoa(int(s)))
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
