package tmas

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	for _, tt := range []struct {
		name   string
		data   string
		expect []HourlyTrafficVolume
	}{
		{"empty", "", nil},
		{"single line (no trailing new line)", volumeLine1, []HourlyTrafficVolume{volume1}},
		{"single line (trailing new line)", volumeLine1 + "\n", []HourlyTrafficVolume{volume1}},
		{"multiple lines", volumeLine1 + "\n" + volumeLine2 + "\n" + volumeLine3, []HourlyTrafficVolume{volume1, volume2, volume3}},
		{"crlf", volumeLine1 + "\r\n" + volumeLine2 + "\r\n", []HourlyTrafficVolume{volume1, volume2}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			have, err := Unmarshal[HourlyTrafficVolume]([]byte(tt.data), VolumeFormatter{})
			require.NoError(t, err)
			assert.Equal(t, tt.expect, have)
		})
	}
}

func TestUnmarshal_error(t *testing.T) {
	data := volumeLine1 + "\n" + volumeLine2[:100] + "\n" + volumeLine3 + "\n"
	have, err := Unmarshal[HourlyTrafficVolume]([]byte(data), VolumeFormatter{})
	assert.Equal(t, []HourlyTrafficVolume{volume1}, have)

	var truncErr *TruncatedRecordError
	require.True(t, errors.As(err, &truncErr), "have %v", err)
	assert.Equal(t, 100, truncErr.Actual)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecoder_Decode(t *testing.T) {
	data := classificationLine + "\n" + stationLine1 + "\n" + classificationLine + "\n"
	f, err := NewClassificationFormatter(Groupings3)
	require.NoError(t, err)
	d := NewDecoder[ClassificationData](strings.NewReader(data), f)

	c, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, classification1, c)
	assert.Equal(t, 1, d.Line())
	assert.Equal(t, classificationLine, d.Text())

	// A bad line does not stop the decoder.
	_, err = d.Decode()
	var kindErr *UnexpectedRecordKindError
	require.True(t, errors.As(err, &kindErr), "have %v", err)
	assert.Equal(t, 2, d.Line())
	assert.Equal(t, stationLine1, d.Text())

	c, err = d.Decode()
	require.NoError(t, err)
	assert.Equal(t, classification1, c)

	_, err = d.Decode()
	assert.Equal(t, io.EOF, err)
	_, err = d.Decode()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 3, d.Line())
}

func TestDecoder_blankLines(t *testing.T) {
	d := NewDecoder[WeightData](strings.NewReader(weightLine1+"\n\n"+weightLine2), WeightFormatter{})

	_, err := d.Decode()
	require.NoError(t, err)

	_, err = d.Decode()
	var truncErr *TruncatedRecordError
	require.True(t, errors.As(err, &truncErr), "have %v", err)
	assert.Equal(t, 0, truncErr.Actual)
	assert.Equal(t, 2, d.Line())

	w, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, weight2, w)
}

func TestDecoder_All(t *testing.T) {
	data := weightLine1 + "\n" + weightLine2 + "\n" + weightLine1[:10] + "\n" + weightLine2 + "\n"
	d := NewDecoder[WeightData](strings.NewReader(data), WeightFormatter{})

	var have []WeightData
	var errs []error
	for w, err := range d.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		have = append(have, w)
	}
	assert.Equal(t, []WeightData{weight1, weight2}, have)
	require.Len(t, errs, 1)
	assert.Equal(t, 3, d.Line())

	// The rest of the input is still available.
	rest, err := d.DecodeAll()
	require.NoError(t, err)
	assert.Equal(t, []WeightData{weight2}, rest)
}

func TestDecoder_readError(t *testing.T) {
	r := io.MultiReader(strings.NewReader(speedLine+"\n"), iotest.ErrReader(errors.New("disk on fire")))
	d := NewDecoder[SpeedData](r, SpeedFormatter{})

	s, err := d.Decode()
	require.NoError(t, err)
	assert.Equal(t, speed1, s)

	_, err = d.Decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.NotErrorIs(t, err, io.EOF)
}

func TestDecoder_oneByteReader(t *testing.T) {
	d := NewDecoder[StationDescription](iotest.OneByteReader(bytes.NewBufferString(stationLine1+"\n"+stationLine2)), StationFormatter{})
	have, err := d.DecodeAll()
	require.NoError(t, err)
	assert.Equal(t, []StationDescription{station1, station2}, have)
}
