// File: errors.go
// Role: Sentinel errors for the builder package.
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with errors.Wrapf, never by formatting
//     parameters into the sentinel itself.

package builder

import "github.com/katalvlaran/ricci/errors"

// ErrTooFewVertices indicates a size parameter (n, rows, degree) below the
// minimum accepted by the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the constructor exhausted its attempts, or a
// nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method context to a sentinel.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, method+": "+format, args...)
}
