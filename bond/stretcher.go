package bond

import (
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Stretcher is the running-bond rule: every course is full bricks, except
// that odd-indexed courses start with a half brick to stagger head joints
// by half a brick width course to course. The last brick of a course is
// sliced to end exactly at the wall's right edge.
type Stretcher struct{}

// NewStretcher constructs a Stretcher bond.
func NewStretcher() *Stretcher {
	return &Stretcher{}
}

// NextBrick implements wall.Bond.
func (s *Stretcher) NextBrick(courseSoFar []*wall.Unit, courseIndex int, cursor geometry.Point, wallLength float64, _ []*wall.Course) (*wall.Unit, error) {
	var candidate *wall.Unit
	switch {
	case isFirstBrick(courseSoFar) && isOddCourse(courseIndex):
		candidate = wall.NewHalfBrick(cursor)
	default:
		candidate = wall.NewFullBrick(cursor)
	}

	return fitBrickAtEnd(candidate, wallLength)
}

// Retries implements wall.Bond: the stretcher bond never fails.
func (s *Stretcher) Retries() int {
	return 0
}

// Name implements wall.Bond.
func (s *Stretcher) Name() string {
	return "stretcher"
}
