// Package errors provides error handling for ricci.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Marking errors with a taxonomy sentinel while keeping the cause
//
// Usage:
//
//	// Wrap a sentinel with context, callers still match it with Is
//	return errors.Wrapf(errors.ErrMalformedEdge, "edge %s-%s: weight %g", u, v, w)
//
//	// Keep an underlying cause but classify it
//	return errors.Mark(errors.Wrap(err, "transport"), errors.ErrTransportSolver)
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection and classification
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	Mark          = crdb.Mark
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Error taxonomy shared by every ricci package.
// Wrap these with Wrap/Wrapf to add context while preserving the type.
var (
	// ErrMalformedEdge is fatal at input time: weight ≤ 0 (or not finite),
	// empty endpoint, self-loop or a repeated unordered pair.
	ErrMalformedEdge = New("malformed edge")

	// ErrEmptyGraph is returned when a structural operation needs at least one edge.
	ErrEmptyGraph = New("empty graph")

	// ErrDisconnectedNeighborhood is returned when the distance between the
	// endpoints of an edge is undefined.
	ErrDisconnectedNeighborhood = New("disconnected neighborhood")

	// ErrTransportSolver marks a per-edge optimal transport failure.
	// The edge is excluded from aggregates and counted.
	ErrTransportSolver = New("transport solver failed")

	// ErrNullGeneration marks a per-replicate failure to produce a valid
	// simple graph within the attempt budget.
	ErrNullGeneration = New("null generation failed")

	// ErrInsufficientValidReplicates is fatal for a whole test once the share
	// of skipped replicates exceeds the configured tolerance.
	ErrInsufficientValidReplicates = New("insufficient valid replicates")

	// ErrInvalidConfig indicates a configuration value outside its domain.
	ErrInvalidConfig = New("invalid configuration")
)

// IsRecoverable reports whether err is a local failure that the Monte Carlo
// loop recovers from by skipping (per-edge or per-replicate).
func IsRecoverable(err error) bool {
	return err != nil && IsAny(err, ErrTransportSolver, ErrNullGeneration)
}
