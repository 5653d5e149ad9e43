package wall

import (
	"errors"
	"fmt"

	"github.com/franceswong9/buildplanner/geometry"
)

// CreateWall synthesises a wall of the given length and height using bond to
// decide, course by course, slot by slot, which brick comes next. Head
// joints are interleaved automatically between bricks whenever a course is
// not yet complete.
//
// Construction of the whole wall is retried up to bond.Retries() times
// (at least once) if bond.NextBrick ever returns ErrWallPlanning; a partial
// wall from a failed attempt is discarded entirely, never patched. Once the
// retry budget is exhausted, CreateWall fails with the bond's name wrapped
// around ErrWallPlanning.
func CreateWall(length, height float64, bond Bond) (*Wall, error) {
	attempts := bond.Retries()
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		w, err := buildWallAttempt(length, height, bond)
		if err == nil {
			return w, nil
		}
		if !errors.Is(err, ErrWallPlanning) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("create wall: bond %q exhausted %d attempt(s): %w", bond.Name(), attempts, lastErr)
}

func buildWallAttempt(length, height float64, bond Bond) (*Wall, error) {
	box := geometry.NewRectangle(geometry.NewPoint(0, 0), length, height)
	numberOfCourses := int(height / CourseHeight)

	courses := make([]*Course, 0, numberOfCourses)
	for i := 0; i < numberOfCourses; i++ {
		course, err := buildCourse(i, length, bond, courses)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return NewWall(box, courses), nil
}

func buildCourse(index int, length float64, bond Bond, previousCourses []*Course) (*Course, error) {
	units := make([]*Unit, 0)
	point := geometry.NewPoint(0, float64(index)*CourseHeight+BedJointThickness)

	for point.X < length {
		brick, err := bond.NextBrick(units, index, point, length, previousCourses)
		if err != nil {
			return nil, err
		}

		units = append(units, brick)
		point = point.PlusX(brick.Box.Length)

		if point.X < length {
			joint := NewHeadJoint(point)
			units = append(units, joint)
			point = point.PlusX(HeadJointWidth)
		}
	}

	return NewCourse(float64(index)*CourseHeight, units), nil
}
