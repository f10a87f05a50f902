// File: weight_fn.go
// Role: Edge-weight distributions for constructors.
// Contract:
//   - Every WeightFn returns a finite value > 0, since core.Build rejects
//     anything else.
//   - A nil RNG yields DefaultEdgeWeight so deterministic builders never need one.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// minPositiveWeight bounds samplers whose distribution can reach zero.
const minPositiveWeight = 1e-6

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value ≤ 0.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max).
// Panics unless 0 < min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// ExponentialWeightFn samples Exp(rate), floored at a tiny positive value.
// Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(rng.ExpFloat64()/rate, minPositiveWeight)
	}
}

// ChoiceWeightFn samples uniformly from a fixed set of weights.
// Panics if values is empty or holds a value ≤ 0.
func ChoiceWeightFn(values ...float64) WeightFn {
	if len(values) == 0 {
		panic("ChoiceWeightFn: at least one value is required")
	}
	for _, v := range values {
		if !(v > 0) {
			panic(fmt.Sprintf("ChoiceWeightFn: values must be > 0, got %g", v))
		}
	}
	vs := append([]float64(nil), values...)
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return vs[0]
		}
		return vs[rng.Intn(len(vs))]
	}
}
