package bond

import (
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Flemish is the Flemish bond rule: each course alternates half and full
// bricks, with the alternation seeded differently on odd courses (starting
// three-quarter) than even ones (starting half) so head joints stagger.
type Flemish struct{}

// NewFlemish constructs a Flemish bond.
func NewFlemish() *Flemish {
	return &Flemish{}
}

// NextBrick implements wall.Bond.
func (f *Flemish) NextBrick(courseSoFar []*wall.Unit, courseIndex int, cursor geometry.Point, wallLength float64, _ []*wall.Course) (*wall.Unit, error) {
	var candidate *wall.Unit

	if isFirstBrick(courseSoFar) {
		if isOddCourse(courseIndex) {
			candidate = wall.NewThreeQuarterBrick(cursor)
		} else {
			candidate = wall.NewHalfBrick(cursor)
		}
	} else if prev := previousBrick(courseSoFar); prev != nil && prev.Box.Length == wall.HalfBrickLength {
		candidate = wall.NewFullBrick(cursor)
	} else {
		candidate = wall.NewHalfBrick(cursor)
	}

	return fitBrickAtEnd(candidate, wallLength)
}

// Retries implements wall.Bond: the Flemish bond never fails.
func (f *Flemish) Retries() int {
	return 0
}

// Name implements wall.Bond.
func (f *Flemish) Name() string {
	return "flemish"
}
