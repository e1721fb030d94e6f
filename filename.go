package tmas

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileName identifies the monthly exchange file of one kind for a station.
// Files are named SSIIIIIIMMYYYY.ext: the two digit state code, the station
// id zero-filled to six characters, the month and the year.
type FileName struct {
	State     State
	StationID string
	Month     int
	Year      int
}

// Validate reports whether the name's parts fit their columns.
func (n FileName) Validate() error {
	switch {
	case !n.State.Valid():
		return errors.Errorf("tmas: invalid state code %d", int(n.State))
	case n.StationID == "":
		return errors.New("tmas: station id is empty")
	case len(n.StationID) > 6:
		return errors.Errorf("tmas: station id %q is longer than 6 characters", n.StationID)
	case strings.ContainsAny(n.StationID, " ./\\") || !printable(n.StationID):
		return errors.Errorf("tmas: station id %q is not a valid file name part", n.StationID)
	case n.Month < 1 || n.Month > 12:
		return errors.Errorf("tmas: month %d is not between 1 and 12", n.Month)
	case n.Year < 0 || n.Year > 9999:
		return errors.Errorf("tmas: year %d is not between 0 and 9999", n.Year)
	}
	return nil
}

// Name returns the file name for records of kind k.
func (n FileName) Name(k Kind) (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}
	if !k.Valid() {
		return "", errors.Errorf("tmas: invalid record kind %d", int(k))
	}
	return n.String() + "." + k.Extension(), nil
}

// Path returns the file name for kind k joined to dir.
func (n FileName) Path(dir string, k Kind) (string, error) {
	name, err := n.Name(k)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// ParseFileName splits the base name of path into its parts and record
// kind.
func ParseFileName(path string) (FileName, Kind, error) {
	base := filepath.Base(path)
	stem, ext, ok := strings.Cut(base, ".")
	if !ok {
		return FileName{}, 0, errors.Errorf("tmas: file name %q has no extension", base)
	}
	k, ok := KindForExtension(strings.ToLower(ext))
	if !ok {
		return FileName{}, 0, errors.Errorf("tmas: file name %q has unknown extension %q", base, ext)
	}
	if len(stem) != 14 {
		return FileName{}, 0, errors.Errorf("tmas: file name %q must have 14 characters before the extension", base)
	}

	state, err1 := parseDigits(stem[0:2])
	month, err2 := parseDigits(stem[8:10])
	year, err3 := parseDigits(stem[10:14])
	if err1 != nil || err2 != nil || err3 != nil {
		return FileName{}, 0, errors.Errorf("tmas: file name %q has non-numeric state, month or year", base)
	}

	n := FileName{
		State:     State(state),
		StationID: strings.TrimLeft(stem[2:8], "0"),
		Month:     month,
		Year:      year,
	}
	if err := n.Validate(); err != nil {
		return FileName{}, 0, errors.Wrapf(err, "file name %q", base)
	}
	return n, k, nil
}

// String returns the name without an extension. It does not validate n.
func (n FileName) String() string {
	id := n.StationID
	if len(id) < 6 {
		id = strings.Repeat("0", 6-len(id)) + id
	}
	return fmt.Sprintf("%02d%s%02d%04d", int(n.State), id, n.Month, n.Year)
}
