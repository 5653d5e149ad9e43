package geometry_test

import (
	"errors"
	"testing"

	"github.com/franceswong9/buildplanner/geometry"
	"github.com/stretchr/testify/require"
)

func TestRectangleCorners(t *testing.T) {
	require.Equal(t, geometry.NewPoint(1, -1), geometry.NewRectangle(geometry.NewPoint(1, -5), 2, 4).TopLeft())
	require.Equal(t, geometry.NewPoint(3, 1), geometry.NewRectangle(geometry.NewPoint(1, 1), 2, 6).BottomRight())
	require.Equal(t, geometry.NewPoint(1, 4), geometry.NewRectangle(geometry.NewPoint(-1, -2), 2, 6).TopRight())
	require.Equal(t, geometry.NewPoint(-5, 5), geometry.NewRectangle(geometry.NewPoint(-6, 4), 2, 2).Middle())
}

func TestRectangleBounds(t *testing.T) {
	require.True(t, geometry.NewRectangle(geometry.NewPoint(-10, -10), 20, 20).Bounds(geometry.NewRectangle(geometry.NewPoint(0, 0), 5, 5)))
	require.True(t, geometry.NewRectangle(geometry.NewPoint(-5, 8), 3, 3).Bounds(geometry.NewRectangle(geometry.NewPoint(-5, 8), 1, 1)))
	require.False(t, geometry.NewRectangle(geometry.NewPoint(0, 0), 20, 20).Bounds(geometry.NewRectangle(geometry.NewPoint(5, -10), 1, 1)))
	require.False(t, geometry.NewRectangle(geometry.NewPoint(0, 0), 20, 20).Bounds(geometry.NewRectangle(geometry.NewPoint(-1, 0), 5, 5)))
	require.False(t, geometry.NewRectangle(geometry.NewPoint(0, 0), 20, 20).Bounds(geometry.NewRectangle(geometry.NewPoint(19, 19), 5, 5)))
}

func TestRectangleOverlapsInXAxis(t *testing.T) {
	// Strict overlap: left/right partial overlaps still count.
	require.True(t, geometry.NewRectangle(geometry.NewPoint(0, 1), 5, 10).OverlapsInXAxis(geometry.NewRectangle(geometry.NewPoint(3, -4), 3, 1)))
	require.True(t, geometry.NewRectangle(geometry.NewPoint(5, 1), 3, 10).OverlapsInXAxis(geometry.NewRectangle(geometry.NewPoint(3, -4), 3, 1)))
	require.True(t, geometry.NewRectangle(geometry.NewPoint(5, 1), 5, 10).OverlapsInXAxis(geometry.NewRectangle(geometry.NewPoint(6, -4), 1, 1)))
	require.True(t, geometry.NewRectangle(geometry.NewPoint(5, 1), 5, 10).OverlapsInXAxis(geometry.NewRectangle(geometry.NewPoint(0, -4), 20, 1)))
	require.False(t, geometry.NewRectangle(geometry.NewPoint(0, 1), 2, 10).OverlapsInXAxis(geometry.NewRectangle(geometry.NewPoint(3, -4), 3, 1)))
	require.False(t, geometry.NewRectangle(geometry.NewPoint(7, 1), 2, 10).OverlapsInXAxis(geometry.NewRectangle(geometry.NewPoint(3, -4), 3, 1)))
}

func TestRectangleOverlapsInXAxisTouchingIsNotOverlap(t *testing.T) {
	// Two bricks sharing a boundary (e.g. at x=210) must not be treated as overlapping.
	left := geometry.NewRectangle(geometry.NewPoint(0, 0), 210, 50)
	right := geometry.NewRectangle(geometry.NewPoint(210, 0), 100, 50)
	require.False(t, left.OverlapsInXAxis(right))
	require.False(t, right.OverlapsInXAxis(left))
}

func TestRectangleSliceAtX(t *testing.T) {
	r := geometry.NewRectangle(geometry.NewPoint(100, 0), 210, 50)

	sliced, err := r.SliceAtX(300)
	require.NoError(t, err)
	require.Equal(t, 200.0, sliced.Length)

	sliced, err = r.SliceAtX(500)
	require.NoError(t, err)
	require.Equal(t, 210.0, sliced.Length, "clamped to the original length")

	_, err = r.SliceAtX(50)
	require.Error(t, err)
	require.True(t, errors.Is(err, geometry.ErrNegativeSlice))
}
