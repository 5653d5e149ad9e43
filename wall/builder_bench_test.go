package wall_test

import (
	"testing"

	"github.com/franceswong9/buildplanner/bond"
	"github.com/franceswong9/buildplanner/wall"
)

// BenchmarkCreateWall measures CreateWall's cost for a 2300×2000 stretcher
// wall, the dimensions used throughout spec.md §8's scenarios.
func BenchmarkCreateWall(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wall.CreateWall(2300, 2000, bond.NewStretcher()); err != nil {
			b.Fatalf("CreateWall failed: %v", err)
		}
	}
}
