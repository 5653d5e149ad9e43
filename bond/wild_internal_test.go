package bond

import (
	"testing"

	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func courseWithJointAt(x float64) *wall.Course {
	return wall.NewCourse(0, []*wall.Unit{
		wall.NewFullBrick(geometry.NewPoint(0, 0)),
		wall.NewHeadJoint(geometry.NewPoint(x, 0)),
	})
}

// PatternLengthSuite is a white-box suite over the wild bond's unexported
// pattern-length search.
type PatternLengthSuite struct {
	suite.Suite
}

func (s *PatternLengthSuite) TestNoHistoryIsZero() {
	require.Equal(s.T(), 0, patternLength(100, nil))
}

func (s *PatternLengthSuite) TestStraightStair() {
	// Five courses below each have a joint one check-distance further right
	// than the one above it: a five-long stair, still under the cap.
	var previous []*wall.Course
	x := 100.0
	for i := 0; i < 5; i++ {
		x += WildBondCheckDistance
		previous = append(previous, courseWithJointAt(x))
	}
	// previous is ordered bottom-first in CreateWall's usage; build it so
	// previous[len-1] is the most recently built (closest) course.
	reversed := make([]*wall.Course, len(previous))
	for i, c := range previous {
		reversed[len(previous)-1-i] = c
	}

	require.Equal(s.T(), 5, patternLength(100, reversed))
}

func (s *PatternLengthSuite) TestBreaksWhenJointMissing() {
	c0 := courseWithJointAt(155) // 100 + 55
	c1 := wall.NewCourse(0, []*wall.Unit{wall.NewFullBrick(geometry.NewPoint(0, 0))})

	// c0 is the most recently built course (index -1), c1 is further below.
	require.Equal(s.T(), 1, patternLength(100, []*wall.Course{c1, c0}))
}

func (s *PatternLengthSuite) TestCapsAtSix() {
	var previous []*wall.Course
	x := 100.0
	for i := 0; i < 8; i++ {
		x += WildBondCheckDistance
		previous = append([]*wall.Course{courseWithJointAt(x)}, previous...)
	}

	require.Equal(s.T(), WildBondMaxPatternLen, patternLength(100, previous))
}

func TestPatternLengthSuite(t *testing.T) {
	suite.Run(t, new(PatternLengthSuite))
}
