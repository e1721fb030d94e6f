package tmas

import "strconv"

// Kind identifies one of the five record formats.
type Kind int

// The record kinds, in file-specification order.
const (
	KindStation        Kind = iota + 1 // station description lines, "S"
	KindVolume                         // hourly traffic volume lines, "3"
	KindClassification                 // vehicle classification lines, "C"
	KindSpeed                          // speed lines, "T"
	KindWeight                         // per-vehicle weight lines, "W"
)

type kindSpec struct {
	name          string
	extension     string
	discriminator byte

	// minLength is the first sanity bound applied to a line. For fixed
	// length kinds it is also the exact length.
	minLength int

	// canonicalLength is the width of lines in exchange files. Encoded
	// lines are never shorter than this.
	canonicalLength int
	fixed           bool
}

var kindSpecs = map[Kind]kindSpec{
	KindStation:        {"station description", "sta", 'S', 213, 213, true},
	KindVolume:         {"hourly traffic volume", "vol", '3', 143, 143, true},
	KindClassification: {"classification", "cla", 'C', 38, 93, false},
	KindSpeed:          {"speed", "spd", 'T', 105, 155, false},
	KindWeight:         {"weight", "wgt", 'W', 147, 147, false},
}

var kinds = []Kind{KindStation, KindVolume, KindClassification, KindSpeed, KindWeight}

// Kinds returns every record kind in file-specification order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is one of the five record kinds.
func (k Kind) Valid() bool {
	_, ok := kindSpecs[k]
	return ok
}

func (k Kind) String() string {
	if s, ok := kindSpecs[k]; ok {
		return s.name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Extension returns the three letter file extension for the kind.
func (k Kind) Extension() string { return kindSpecs[k].extension }

// Discriminator returns the character found in column 1 of every line of the
// kind.
func (k Kind) Discriminator() byte { return kindSpecs[k].discriminator }

// MinLength returns the shortest line a decoder will consider. For fixed
// length kinds this is the exact line length.
func (k Kind) MinLength() int { return kindSpecs[k].minLength }

// CanonicalLength returns the line width written by the kind's encoder when
// the record's counts do not require a longer line.
func (k Kind) CanonicalLength() int { return kindSpecs[k].canonicalLength }

// FixedLength reports whether every line of the kind has the same length.
func (k Kind) FixedLength() bool { return kindSpecs[k].fixed }

// KindForExtension returns the kind whose file extension is ext.
func KindForExtension(ext string) (Kind, bool) {
	for _, k := range kinds {
		if kindSpecs[k].extension == ext {
			return k, true
		}
	}
	return 0, false
}

// KindForDiscriminator returns the kind whose lines start with c.
func KindForDiscriminator(c byte) (Kind, bool) {
	for _, k := range kinds {
		if kindSpecs[k].discriminator == c {
			return k, true
		}
	}
	return 0, false
}
