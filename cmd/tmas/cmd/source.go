package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wallaceicy06/go-tmas"
	"github.com/wallaceicy06/go-tmas/internal/config"
)

// recordSource decodes the records of one file regardless of their kind.
type recordSource interface {
	Kind() tmas.Kind
	// Next returns io.EOF once the input is exhausted.
	Next() (tmas.Record, error)
	Line() int
	Text() string
	Encode(r tmas.Record) (string, error)
}

type source[T tmas.Record] struct {
	dec *tmas.Decoder[T]
	f   tmas.Formatter[T]
}

func newSource[T tmas.Record](r io.Reader, f tmas.Formatter[T]) *source[T] {
	return &source[T]{dec: tmas.NewDecoder[T](r, f), f: f}
}

func (s *source[T]) Kind() tmas.Kind { return s.f.Kind() }

func (s *source[T]) Next() (tmas.Record, error) {
	v, err := s.dec.Decode()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *source[T]) Line() int    { return s.dec.Line() }
func (s *source[T]) Text() string { return s.dec.Text() }

func (s *source[T]) Encode(r tmas.Record) (string, error) {
	v, ok := r.(T)
	if !ok {
		return "", errors.Errorf("cannot encode %T as a %s record", r, s.f.Kind())
	}
	return s.f.Encode(v)
}

// classificationOptions selects the grouping count for classification
// files.
type classificationOptions struct {
	groupings string
	station   string
}

func (o *classificationOptions) addFlags(c *cobra.Command) {
	c.Flags().StringVar(&o.groupings, "groupings", "", "number of class bins per classification line (2-7 or 13)")
	c.Flags().StringVar(&o.station, "station", "", "station description file giving the classification grouping count")
}

// formatter returns the classification formatter for the file at path.
func (o *classificationOptions) formatter(path string) (tmas.ClassificationFormatter, error) {
	switch {
	case o.groupings != "":
		g, err := config.ParseGroupings(o.groupings)
		if err != nil {
			return tmas.ClassificationFormatter{}, err
		}
		return tmas.NewClassificationFormatter(g)
	case o.station != "":
		s, err := findStation(o.station, path)
		if err != nil {
			return tmas.ClassificationFormatter{}, err
		}
		logger.Debug("using station grouping count", "station", s.StationID, "groupings", s.Groupings().String())
		return tmas.ClassificationFormatterFor(s), nil
	case cfg != nil:
		return tmas.NewClassificationFormatter(cfg.ClassificationGroupings)
	}
	return tmas.ClassificationFormatter{}, nil
}

// findStation returns the station in the description file staPath that
// matches the name of the data file at path, or the first station when none
// matches.
func findStation(staPath, path string) (tmas.StationDescription, error) {
	f, err := os.Open(staPath)
	if err != nil {
		return tmas.StationDescription{}, err
	}
	defer f.Close()

	stations, err := tmas.NewDecoder[tmas.StationDescription](f, tmas.StationFormatter{}).DecodeAll()
	if err != nil {
		return tmas.StationDescription{}, errors.Wrap(err, staPath)
	}
	if len(stations) == 0 {
		return tmas.StationDescription{}, errors.Errorf("%s: no station descriptions", staPath)
	}

	if name, _, err := tmas.ParseFileName(path); err == nil {
		for _, s := range stations {
			if s.State == name.State && s.StationID == name.StationID {
				return s, nil
			}
		}
	}
	logger.Warn("no station matches file name, using the first station", "file", path, "station", stations[0].StationID)
	return stations[0], nil
}

// kindOf returns the record kind named by the extension of path.
func kindOf(path string) (tmas.Kind, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	k, ok := tmas.KindForExtension(ext)
	if !ok {
		return 0, errors.Errorf("%s: unknown file extension %q", path, ext)
	}
	return k, nil
}

// newRecordSource returns a source decoding r, the contents of path, with
// the formatter for the kind its extension names.
func newRecordSource(path string, r io.Reader, opts *classificationOptions) (recordSource, error) {
	k, err := kindOf(path)
	if err != nil {
		return nil, err
	}
	switch k {
	case tmas.KindStation:
		return newSource[tmas.StationDescription](r, tmas.StationFormatter{}), nil
	case tmas.KindVolume:
		return newSource[tmas.HourlyTrafficVolume](r, tmas.VolumeFormatter{}), nil
	case tmas.KindClassification:
		f, err := opts.formatter(path)
		if err != nil {
			return nil, err
		}
		return newSource[tmas.ClassificationData](r, f), nil
	case tmas.KindSpeed:
		return newSource[tmas.SpeedData](r, tmas.SpeedFormatter{}), nil
	case tmas.KindWeight:
		return newSource[tmas.WeightData](r, tmas.WeightFormatter{}), nil
	}
	return nil, errors.Errorf("%s: unsupported record kind %s", path, k)
}

// isRecordError reports whether err concerns a single malformed line, after
// which reading can continue.
func isRecordError(err error) bool {
	var (
		kindErr      *tmas.UnexpectedRecordKindError
		truncatedErr *tmas.TruncatedRecordError
		overlongErr  *tmas.OverlongRecordError
		fieldErr     *tmas.InvalidFieldError
	)
	return errors.As(err, &kindErr) ||
		errors.As(err, &truncatedErr) ||
		errors.As(err, &overlongErr) ||
		errors.As(err, &fieldErr)
}
