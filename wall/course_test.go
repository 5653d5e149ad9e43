package wall_test

import (
	"testing"

	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
	"github.com/stretchr/testify/require"
)

func TestCourseIndex(t *testing.T) {
	require.Equal(t, 0, wall.NewCourse(0, nil).Index())
	require.Equal(t, 1, wall.NewCourse(62.5, nil).Index())
}

func TestCourseIsBuiltWhenSomeUnitsNotBuilt(t *testing.T) {
	built := wall.NewFullBrick(geometry.NewPoint(0, 0))
	built.IsBuilt = true
	c := wall.NewCourse(0, []*wall.Unit{built, wall.NewFullBrick(geometry.NewPoint(220, 0))})
	require.False(t, c.IsBuilt())
}

func TestCourseIsBuiltWhenAllUnitsBuilt(t *testing.T) {
	b1 := wall.NewFullBrick(geometry.NewPoint(0, 0))
	b1.IsBuilt = true
	j := wall.NewHeadJoint(geometry.NewPoint(210, 0))
	j.IsBuilt = true
	b2 := wall.NewFullBrick(geometry.NewPoint(220, 0))
	b2.IsBuilt = true
	c := wall.NewCourse(0, []*wall.Unit{b1, j, b2})

	require.True(t, c.IsBuilt())
	require.True(t, c.IsBuilt(), "cached value stays stable")
}

func TestCourseJointExistsAt(t *testing.T) {
	j := wall.NewHeadJoint(geometry.NewPoint(210, 0))
	c := wall.NewCourse(0, []*wall.Unit{
		wall.NewFullBrick(geometry.NewPoint(0, 0)),
		j,
		wall.NewFullBrick(geometry.NewPoint(220, 0)),
	})

	require.True(t, c.JointExistsAt(210))
	require.False(t, c.JointExistsAt(0), "a brick at that x is not a joint")
	require.False(t, c.JointExistsAt(999))
}
