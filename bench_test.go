package tmas

import (
	"bytes"
	"io"
	"testing"
)

func benchmarkUnmarshal[T Record](b *testing.B, f Formatter[T], line string, n int) {
	data := bytes.Repeat([]byte(line+"\n"), n)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Unmarshal[T](data, f)
	}
}

func benchmarkMarshal[T Record](b *testing.B, f Formatter[T], record T, n int) {
	records := make([]T, n)
	for i := range records {
		records[i] = record
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Marshal[T](records, f)
	}
}

func BenchmarkUnmarshal_Station_1000(b *testing.B) {
	benchmarkUnmarshal[StationDescription](b, StationFormatter{}, stationLine2, 1000)
}

func BenchmarkUnmarshal_Volume_1(b *testing.B) {
	benchmarkUnmarshal[HourlyTrafficVolume](b, VolumeFormatter{}, volumeLine1, 1)
}

func BenchmarkUnmarshal_Volume_1000(b *testing.B) {
	benchmarkUnmarshal[HourlyTrafficVolume](b, VolumeFormatter{}, volumeLine1, 1000)
}

func BenchmarkUnmarshal_Classification_1000(b *testing.B) {
	benchmarkUnmarshal[ClassificationData](b, ClassificationFormatter{}, pad(classificationLine[:43], 93), 1000)
}

func BenchmarkUnmarshal_Speed_1000(b *testing.B) {
	benchmarkUnmarshal[SpeedData](b, SpeedFormatter{}, speedLine, 1000)
}

func BenchmarkUnmarshal_Weight_1000(b *testing.B) {
	benchmarkUnmarshal[WeightData](b, WeightFormatter{}, weightLine1, 1000)
}

func BenchmarkUnmarshal_Weight_100000(b *testing.B) {
	benchmarkUnmarshal[WeightData](b, WeightFormatter{}, weightLine1, 100000)
}

func BenchmarkMarshal_Station_1000(b *testing.B) {
	benchmarkMarshal[StationDescription](b, StationFormatter{}, station2, 1000)
}

func BenchmarkMarshal_Volume_1000(b *testing.B) {
	benchmarkMarshal[HourlyTrafficVolume](b, VolumeFormatter{}, volume1, 1000)
}

func BenchmarkMarshal_Speed_1000(b *testing.B) {
	benchmarkMarshal[SpeedData](b, SpeedFormatter{}, speed1, 1000)
}

func BenchmarkMarshal_Weight_1000(b *testing.B) {
	benchmarkMarshal[WeightData](b, WeightFormatter{}, weight1, 1000)
}

func BenchmarkDecoder_Weight(b *testing.B) {
	data := bytes.Repeat([]byte(weightLine1+"\n"), 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := NewDecoder[WeightData](bytes.NewReader(data), WeightFormatter{})
		for {
			if _, err := d.Decode(); err == io.EOF {
				break
			}
		}
	}
}

func BenchmarkEncoder_Volume(b *testing.B) {
	e := NewEncoder[HourlyTrafficVolume](io.Discard, VolumeFormatter{})
	for i := 0; i < b.N; i++ {
		_ = e.Encode(volume1)
	}
	_ = e.Flush()
}
