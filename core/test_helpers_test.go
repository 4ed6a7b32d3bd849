// Package core_test contains shared fixtures for lvlgraph/core tests.
//
// Purpose:
//   - Provide small, deterministic vertex and weight constants so test
//     bodies stay free of magic values.
package core_test

import "strings"

// Common vertex values used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexU = "U"

	VertexX = "X"
	VertexY = "Y"
	VertexZ = "Z"
)

// Common weights used across core tests.
const (
	Weight0 = int64(0)
	Weight3 = int64(3)
	Weight5 = int64(5)
	Weight7 = int64(7)
	Weight9 = int64(9)
)

// foldEq is the case-insensitive equality predicate used by the
// injected-identity tests.
func foldEq(a, b string) bool { return strings.EqualFold(a, b) }
