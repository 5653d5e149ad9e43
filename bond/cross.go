package bond

import (
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Cross is the cross/English-cross bond rule: odd-indexed courses are built
// entirely from half bricks; even-indexed courses start and end with a
// quarter brick and are full bricks in between.
type Cross struct{}

// NewCross constructs a Cross bond.
func NewCross() *Cross {
	return &Cross{}
}

// NextBrick implements wall.Bond.
func (c *Cross) NextBrick(courseSoFar []*wall.Unit, courseIndex int, cursor geometry.Point, wallLength float64, _ []*wall.Course) (*wall.Unit, error) {
	var candidate *wall.Unit
	switch {
	case isOddCourse(courseIndex):
		candidate = wall.NewHalfBrick(cursor)
	case isFirstBrick(courseSoFar) || isFullBrickTooLong(cursor, wallLength):
		candidate = wall.NewQuarterBrick(cursor)
	default:
		candidate = wall.NewFullBrick(cursor)
	}

	return fitBrickAtEnd(candidate, wallLength)
}

// Retries implements wall.Bond: the cross bond never fails.
func (c *Cross) Retries() int {
	return 0
}

// Name implements wall.Bond.
func (c *Cross) Name() string {
	return "cross"
}
