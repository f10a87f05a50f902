// File: semantics.go
// Role: Weight semantics and the named conversions between affinity and length.
// Determinism:
//   - Pure functions; no state.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ricci/errors"
)

// Semantics declares how a Graph's edge weights are to be read.
type Semantics int

const (
	// Affinity: a higher weight means a stronger bond (association strength).
	Affinity Semantics = iota

	// Length: a higher weight means a longer, weaker link (metric distance).
	Length
)

// String returns the lower-case name used in configuration files.
func (s Semantics) String() string {
	switch s {
	case Affinity:
		return "affinity"
	case Length:
		return "length"
	default:
		return fmt.Sprintf("semantics(%d)", int(s))
	}
}

// ParseSemantics maps "affinity"/"length" (case-insensitive) to a Semantics.
func ParseSemantics(name string) (Semantics, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "affinity", "":
		return Affinity, nil
	case "length", "metric", "distance":
		return Length, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidConfig, "core: unknown weight semantics %q", name)
	}
}

// AffinityToLength converts a bond strength into a metric length.
// Input must be > 0 (guaranteed for every stored weight).
func AffinityToLength(w float64) float64 { return 1 / w }

// LengthToAffinity converts a metric length into a bond strength.
// Input must be > 0 (guaranteed for every stored weight).
func LengthToAffinity(l float64) float64 { return 1 / l }

// affinityOf reads a stored weight as an affinity under semantics s.
func affinityOf(s Semantics, w float64) float64 {
	if s == Length {
		return LengthToAffinity(w)
	}
	return w
}

// lengthOf reads a stored weight as a length under semantics s.
func lengthOf(s Semantics, w float64) float64 {
	if s == Affinity {
		return AffinityToLength(w)
	}
	return w
}
