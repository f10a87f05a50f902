// Package dijkstra defines the options and sentinel errors of the
// float64 shortest-path search over core.Graph lengths.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/ricci/errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex (or index) does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for vertices not settled by the search.
var Unreachable = math.Inf(1)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string  // starting vertex ID (ID-level entry point only)
	ReturnPath  bool    // produce predecessors
	MaxDistance float64 // vertices farther than this are not settled (default +Inf)

	// Targets are optional vertex indices; the search stops once all of them
	// are settled, so other vertices may report Unreachable despite a path.
	Targets []int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of predecessors in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a cutoff on settled distances.
// Panics with ErrBadMaxDistance for a negative or NaN cutoff.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithTargets stops the search once every listed vertex index is settled.
// Out-of-range indices are ignored.
func WithTargets(idx ...int) Option {
	t := append([]int(nil), idx...)
	return func(o *Options) {
		o.Targets = t
	}
}

// DefaultOptions returns Options with no cutoff, no targets and no paths.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}
