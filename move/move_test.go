package move_test

import (
	"testing"

	"github.com/franceswong9/buildplanner/align"
	"github.com/franceswong9/buildplanner/bond"
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/move"
	"github.com/franceswong9/buildplanner/wall"
	"github.com/stretchr/testify/require"
)

type fixedReach struct{ length, height float64 }

func (r fixedReach) ReachLength() float64 { return r.length }
func (r fixedReach) ReachHeight() float64 { return r.height }

// Scenario 5 (spec.md §8): outside-in stride sequence on a freshly built
// 2300x2000 wall with an 800x1300 reach.
func TestOutsideInStrideSequence(t *testing.T) {
	w, err := wall.CreateWall(2300, 2000, bond.NewStretcher())
	require.NoError(t, err)

	reach := fixedReach{length: 800, height: 1300}
	strategy := move.NewOutsideIn(align.NewCenter())

	want := []geometry.Point{
		geometry.NewPoint(1500, 0),
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1500, 0),
	}
	for i, wantPoint := range want {
		r, ok := strategy.NextMove(reach, w)
		require.Truef(t, ok, "stride %d: expected a move", i)
		require.Equalf(t, wantPoint, r.BottomLeft, "stride %d", i)
	}
}

func TestLeftToRightAlwaysNaturalOrder(t *testing.T) {
	w, err := wall.CreateWall(2300, 2000, bond.NewStretcher())
	require.NoError(t, err)

	reach := fixedReach{length: 800, height: 1300}
	strategy := move.NewLeftToRight(align.NewLeft())

	r, ok := strategy.NextMove(reach, w)
	require.True(t, ok)
	require.Equal(t, 0.0, r.BottomLeft.X)

	r, ok = strategy.NextMove(reach, w)
	require.True(t, ok)
	require.Equal(t, 0.0, r.BottomLeft.X)
}

func TestSnakeTogglesOnlyAcrossCourseBoundary(t *testing.T) {
	w, err := wall.CreateWall(2300, 2000, bond.NewStretcher())
	require.NoError(t, err)

	reach := fixedReach{length: 800, height: 1300}
	strategy := move.NewSnake(align.NewLeft())

	first, ok := strategy.NextMove(reach, w)
	require.True(t, ok)
	require.Equal(t, 0.0, first.BottomLeft.X)

	second, ok := strategy.NextMove(reach, w)
	require.True(t, ok)
	require.Equal(t, first, second, "same course, same call: direction must not change")
}

func TestDynamicSnakeSwapsAlignmentByRemainingWork(t *testing.T) {
	w, err := wall.CreateWall(2300, 2000, bond.NewStretcher())
	require.NoError(t, err)

	reach := fixedReach{length: 800, height: 1300}
	strategy := move.NewDynamicSnake()

	course := w.NextNonCompleteCourse()
	require.NotNil(t, course)

	// Nothing is built yet, so the first unbuilt unit sits at offset 0 from
	// both ends: the right offset (0, the trailing half brick) does not
	// exceed the left offset (0, the leading full brick), so the strategy
	// must keep its right-aligned, left-to-right default.
	r, ok := strategy.NextMove(reach, w)
	require.True(t, ok)
	require.Equal(t, 0.0, r.BottomLeft.X)
}

func TestNoMoreWorkReturnsFalse(t *testing.T) {
	w, err := wall.CreateWall(210, 62.5, bond.NewStretcher())
	require.NoError(t, err)

	course := w.NextNonCompleteCourse()
	require.NotNil(t, course)
	for _, u := range course.Units {
		u.IsBuilt = true
	}

	reach := fixedReach{length: 800, height: 50}
	strategy := move.NewLeftToRight(align.NewLeft())
	_, ok := strategy.NextMove(reach, w)
	require.False(t, ok)
}
