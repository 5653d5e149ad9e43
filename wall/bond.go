package wall

import "github.com/franceswong9/buildplanner/geometry"

// Bond produces the bricks that make up a course, one slot at a time. The
// wall package only depends on this interface; concrete bonds
// (stretcher/cross/flemish/wild) live in the sibling bond package and are
// wired in by callers of CreateWall, not imported here — this keeps the
// data model free of any particular masonry rule.
type Bond interface {
	// NextBrick returns the next brick to place at cursor in the course
	// currently under construction.
	//
	//   courseSoFar     — units already placed in this course, left to right.
	//   courseIndex     — zero-based index of the course being built.
	//   cursor          — the point at which the new brick's bottom-left
	//                     corner must sit.
	//   wallLength      — the wall's total length, for end-of-course slicing.
	//   previousCourses — every already-built course below this one, bottom
	//                     first; used only by bonds that look at stacked
	//                     head-joint alignment (the wild bond).
	//
	// NextBrick returns ErrWallPlanning if it cannot legally place a brick
	// here (today, only the wild bond does this).
	NextBrick(courseSoFar []*Unit, courseIndex int, cursor geometry.Point, wallLength float64, previousCourses []*Course) (*Unit, error)

	// Retries is the number of whole-wall construction attempts CreateWall
	// should make before giving up when this bond raises ErrWallPlanning.
	// Bonds that never fail return 0, which CreateWall treats as "exactly
	// one attempt".
	Retries() int

	// Name identifies the bond in the error CreateWall raises once its
	// retry budget is exhausted.
	Name() string
}
