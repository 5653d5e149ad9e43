package wall

import "github.com/franceswong9/buildplanner/geometry"

// Wall is the fully synthesised target: a bounding box and its courses,
// bottom to top. It is built once by CreateWall and never re-allocated;
// only the underlying units' IsBuilt flags change as a robot builds it.
type Wall struct {
	Box     geometry.Rectangle
	Courses []*Course
	// Length and Height mirror Box.Length/Box.Height for callers that don't
	// want to reach through Box.
	Length float64
	Height float64

	builtCache bool
}

// NewWall constructs a Wall spanning box, with courses ordered bottom to top.
func NewWall(box geometry.Rectangle, courses []*Course) *Wall {
	return &Wall{Box: box, Courses: courses, Length: box.Length, Height: box.Height}
}

// NextNonCompleteCourse returns the lowest course that is not yet fully
// built, or nil once every course is built. The "wall fully built" result
// is memoised: once observed, subsequent calls return nil without
// re-scanning.
func (w *Wall) NextNonCompleteCourse() *Course {
	if w.builtCache {
		return nil
	}

	for _, c := range w.Courses {
		if !c.IsBuilt() {
			return c
		}
	}

	w.builtCache = true
	return nil
}
