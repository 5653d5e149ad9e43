package bond

import (
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// isFirstBrick reports whether no units have been placed in this course yet.
func isFirstBrick(courseSoFar []*wall.Unit) bool {
	return len(courseSoFar) == 0
}

// isOddCourse reports whether courseIndex is odd.
func isOddCourse(courseIndex int) bool {
	return courseIndex%2 == 1
}

// isFullBrickTooLong reports whether a full brick placed at cursor would
// overshoot wallLength.
func isFullBrickTooLong(cursor geometry.Point, wallLength float64) bool {
	return cursor.X+wall.FullBrickLength > wallLength
}

// previousBrick returns the brick placed immediately before the current
// slot, skipping the head joint between them, or nil if this is the first
// brick of the course.
func previousBrick(courseSoFar []*wall.Unit) *wall.Unit {
	if len(courseSoFar) < 2 {
		return nil
	}

	return courseSoFar[len(courseSoFar)-2]
}

// fitBrickAtEnd slices candidate so it never extends past wallLength. For a
// correctly sized wall this is a no-op; it is what lets every bond's rule
// table stay expressed in terms of the brick alphabet while still landing
// exactly on the wall's right edge.
func fitBrickAtEnd(candidate *wall.Unit, wallLength float64) (*wall.Unit, error) {
	return candidate.SlicedTo(wallLength)
}
