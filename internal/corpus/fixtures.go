// Package corpus generates deterministic float64 fixtures shared by the
// gorilla and entropy test suites. It produces no production code; every
// generator is seeded so that a given call always returns the same values.
package corpus

import (
	"math"
	"math/rand"
)

// Linear returns n values starting at start and increasing by step each
// step, a good fit for the Gorilla codec's window-reuse path.
func Linear(n int, start, step float64) []float64 {
	values := make([]float64, n)
	v := start
	for i := range values {
		values[i] = v
		v += step
	}

	return values
}

// Repeated returns n copies of value, the degenerate input for the Gorilla
// "sequence of identical values" boundary case.
func Repeated(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}

	return values
}

// Alternating returns n values cycling between a and b.
func Alternating(n int, a, b float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		if i%2 == 0 {
			values[i] = a
		} else {
			values[i] = b
		}
	}

	return values
}

// Seasonal returns n values following a sine wave of the given amplitude and
// period (in samples), riding on a slow linear drift.
func Seasonal(n int, amplitude, period, drift float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		angle := 2 * math.Pi * float64(i) / period
		values[i] = amplitude*math.Sin(angle) + drift*float64(i)
	}

	return values
}

// Gaussian returns n values drawn from a normal distribution with the given
// mean and standard deviation, using a fixed seed so the sample is identical
// across runs and platforms.
func Gaussian(n int, seed int64, mean, stddev float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mean + stddev*rng.NormFloat64()
	}

	return values
}
