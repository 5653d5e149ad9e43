package bond

import (
	"testing"

	"github.com/franceswong9/buildplanner/wall"
)

// BenchmarkPatternLength measures the wild bond's pattern-length search over
// a history deep enough to hit WildBondMaxPatternLen on every call.
func BenchmarkPatternLength(b *testing.B) {
	const n = WildBondMaxPatternLen + 2
	// Setup: a run of courses whose joints stair-step right by exactly one
	// check-distance per course, so the search always runs to the cap.
	previous := make([]*wall.Course, 0, n)
	x := 100.0
	for i := 0; i < n; i++ {
		x += WildBondCheckDistance
		previous = append([]*wall.Course{courseWithJointAt(x)}, previous...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = patternLength(100, previous)
	}
}
