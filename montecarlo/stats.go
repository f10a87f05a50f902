// File: stats.go
// Role: the test statistics, each a pure function of the null distribution.
// Determinism:
//   - Callers pass the null distribution sorted ascending; sums run in that
//     order so the result does not depend on replicate scheduling.

package montecarlo

import (
	"math"
	"sort"
)

// Cliff's δ magnitude thresholds (Romano et al.).
const (
	deltaNegligible = 0.147
	deltaSmall      = 0.33
	deltaMedium     = 0.474
)

// Magnitude labels of Cliff's δ.
const (
	MagnitudeNegligible = "negligible"
	MagnitudeSmall      = "small"
	MagnitudeMedium     = "medium"
	MagnitudeLarge      = "large"
)

// Geometry labels of a mean curvature.
const (
	GeometryHyperbolic = "hyperbolic"
	GeometryFlat       = "flat"
	GeometrySpherical  = "spherical"
)

// FlatBand is the half-width around 0 inside which a mean κ reads as flat.
const FlatBand = 0.05

// PValue is the two-sided Monte-Carlo p-value with the +1 correction:
// (1 + #{|null_i| ≥ |observed|}) / (n + 1). It lies in (0, 1].
func PValue(observed float64, null []float64) float64 {
	extreme := 0
	ar := math.Abs(observed)
	for _, k := range null {
		if math.Abs(k) >= ar {
			extreme++
		}
	}
	return float64(1+extreme) / float64(len(null)+1)
}

// CliffsDelta returns (#{null_i > observed} − #{null_i < observed}) / n, in [−1, 1].
// An empty null yields 0.
func CliffsDelta(observed float64, null []float64) float64 {
	if len(null) == 0 {
		return 0
	}
	greater, less := 0, 0
	for _, k := range null {
		switch {
		case k > observed:
			greater++
		case k < observed:
			less++
		}
	}
	return float64(greater-less) / float64(len(null))
}

// Percentile returns the p-th percentile (p in [0, 100]) of an ascending
// slice with linear interpolation between closest ranks. Empty input
// yields NaN.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// MeanStd returns the mean and the population standard deviation.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(values)))
}

// EffectMagnitude labels |δ| as negligible, small, medium or large.
func EffectMagnitude(delta float64) string {
	d := math.Abs(delta)
	switch {
	case d < deltaNegligible:
		return MagnitudeNegligible
	case d < deltaSmall:
		return MagnitudeSmall
	case d < deltaMedium:
		return MagnitudeMedium
	default:
		return MagnitudeLarge
	}
}

// Geometry labels a mean curvature: below −FlatBand is hyperbolic, above
// FlatBand spherical, otherwise flat.
func Geometry(kappa float64) string {
	switch {
	case kappa < -FlatBand:
		return GeometryHyperbolic
	case kappa > FlatBand:
		return GeometrySpherical
	default:
		return GeometryFlat
	}
}

// ZScore returns delta/std, or 0 when std is not positive.
func ZScore(delta, std float64) float64 {
	if !(std > 0) {
		return 0
	}
	return delta / std
}

func sortedCopy(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Float64s(out)
	return out
}
