package gorilla

import (
	"bytes"
	"testing"

	"github.com/sivukhin/fp-compression/internal/corpus"
)

type benchDataset struct {
	name    string
	values  []float64
	encoded []byte
}

var (
	benchDatasets = []benchDataset{
		buildBenchDataset("steady_100", corpus.Linear(100, 20.5, 0.05)),
		buildBenchDataset("seasonal_1000", corpus.Seasonal(1000, 12.0, 150, 0.01)),
		buildBenchDataset("repeated_1000", corpus.Repeated(1000, 42.75)),
		buildBenchDataset("alternating_512", corpus.Alternating(512, 48.0, 48.75)),
		buildBenchDataset("gaussian_4096", corpus.Gaussian(4096, 31, 0, 1)),
	}
	benchFloatSink float64
)

func buildBenchDataset(name string, values []float64) benchDataset {
	var buf bytes.Buffer
	enc := NewEncoder64(&buf)
	for _, v := range values {
		if err := enc.AddFloat64(v); err != nil {
			panic(err)
		}
	}
	if err := enc.Finish(); err != nil {
		panic(err)
	}

	return benchDataset{name: name, values: values, encoded: buf.Bytes()}
}

func BenchmarkEncoder64(b *testing.B) {
	for _, dataset := range benchDatasets {
		b.Run(dataset.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				enc := NewEncoder64(&buf)
				for _, v := range dataset.values {
					if err := enc.AddFloat64(v); err != nil {
						b.Fatal(err)
					}
				}
				if err := enc.Finish(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecoder64(b *testing.B) {
	for _, dataset := range benchDatasets {
		b.Run(dataset.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			var sum float64
			for i := 0; i < b.N; i++ {
				dec := NewDecoder64(bytes.NewReader(dataset.encoded))
				for range dataset.values {
					v, err := dec.GetFloat64()
					if err != nil {
						b.Fatal(err)
					}
					sum += v
				}
			}

			benchFloatSink = sum
		})
	}
}
