package curvature

import (
	"math"
	"sort"
)

// Summary is the aggregate of a set of curvature values.
// Std is the population standard deviation.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
}

// Summarize computes a Summary; an empty input yields Count 0 and NaN
// statistics.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Median: nan, Std: nan, Min: nan, Max: nan}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)
	ss := 0.0
	for _, v := range sorted {
		d := v - mean
		ss += d * d
	}

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Summary{
		Count:  n,
		Mean:   mean,
		Median: median,
		Std:    math.Sqrt(ss / float64(n)),
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}
