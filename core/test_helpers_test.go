// Package core_test contains shared fixtures for the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricci/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
	VertexY = "Y"
)

// Common weights (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight4 = 4.0
)

// mustBuild builds g from specs or fails the test.
func mustBuild(t *testing.T, specs []core.EdgeSpec, opts ...core.Option) *core.Graph {
	t.Helper()
	g, err := core.Build(specs, opts...)
	require.NoError(t, err, "Build(%v)", specs)
	return g
}

// triangleSpecs is K3 on A, B, C with distinct weights.
func triangleSpecs() []core.EdgeSpec {
	return []core.EdgeSpec{
		{Source: VertexA, Target: VertexB, Weight: Weight1},
		{Source: VertexB, Target: VertexC, Weight: Weight2},
		{Source: VertexC, Target: VertexA, Weight: Weight3},
	}
}

// twoComponentSpecs is a triangle A-B-C plus a pendant D, and a separate X-Y edge.
func twoComponentSpecs() []core.EdgeSpec {
	return append(triangleSpecs(),
		core.EdgeSpec{Source: VertexC, Target: VertexD, Weight: Weight4},
		core.EdgeSpec{Source: VertexX, Target: VertexY, Weight: Weight1},
	)
}
