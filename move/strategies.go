package move

import (
	"github.com/franceswong9/buildplanner/align"
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// nextMove is the shared skeleton every strategy in this package follows:
// find the lowest non-complete course, pick an order over its units, return
// the reach rectangle for the first unbuilt one.
func nextMove(alignment align.Strategy, reach align.Reach, w *wall.Wall, order []*wall.Unit) (geometry.Rectangle, bool) {
	unit, ok := firstUnbuilt(order)
	if !ok {
		return geometry.Rectangle{}, false
	}
	return alignment.NextReachableArea(unit, reach, w), true
}

// LeftToRight always walks a course's units in their natural left-to-right
// order.
type LeftToRight struct {
	alignment align.Strategy
}

// NewLeftToRight constructs a LeftToRight move strategy using alignment to
// position each reach rectangle.
func NewLeftToRight(alignment align.Strategy) *LeftToRight {
	return &LeftToRight{alignment: alignment}
}

// NextMove implements Strategy.
func (m *LeftToRight) NextMove(reach align.Reach, w *wall.Wall) (geometry.Rectangle, bool) {
	course := w.NextNonCompleteCourse()
	if course == nil {
		return geometry.Rectangle{}, false
	}
	return nextMove(m.alignment, reach, w, course.Units)
}

// Name implements Strategy.
func (*LeftToRight) Name() string { return "left-to-right" }

// OutsideIn alternates the traversal direction on every call, regardless of
// which course is current: right to left on the first call, then left to
// right, and so on.
type OutsideIn struct {
	alignment align.Strategy
	fromLeft  bool
}

// NewOutsideIn constructs an OutsideIn move strategy using alignment to
// position each reach rectangle.
func NewOutsideIn(alignment align.Strategy) *OutsideIn {
	return &OutsideIn{alignment: alignment, fromLeft: true}
}

// NextMove implements Strategy.
func (m *OutsideIn) NextMove(reach align.Reach, w *wall.Wall) (geometry.Rectangle, bool) {
	course := w.NextNonCompleteCourse()
	if course == nil {
		return geometry.Rectangle{}, false
	}
	m.fromLeft = !m.fromLeft
	order := course.Units
	if !m.fromLeft {
		order = reversed(order)
	}
	return nextMove(m.alignment, reach, w, order)
}

// Name implements Strategy.
func (*OutsideIn) Name() string { return "outside-in" }

// Snake flips the traversal direction only when the current course has
// advanced past the last one it was asked about, so an entire course is
// walked in one direction before the next course reverses it.
type Snake struct {
	alignment       align.Strategy
	lastCourseIndex int
	fromLeft        bool
}

// NewSnake constructs a Snake move strategy using alignment to position
// each reach rectangle.
func NewSnake(alignment align.Strategy) *Snake {
	return &Snake{alignment: alignment, fromLeft: true}
}

// NextMove implements Strategy.
func (m *Snake) NextMove(reach align.Reach, w *wall.Wall) (geometry.Rectangle, bool) {
	course := w.NextNonCompleteCourse()
	if course == nil {
		return geometry.Rectangle{}, false
	}
	if course.Index() > m.lastCourseIndex {
		m.fromLeft = !m.fromLeft
		m.lastCourseIndex = course.Index()
	}
	order := course.Units
	if !m.fromLeft {
		order = reversed(order)
	}
	return nextMove(m.alignment, reach, w, order)
}

// Name implements Strategy.
func (*Snake) Name() string { return "snake" }

// DynamicSnake examines both ends of the current course on every call and
// picks a traversal direction by comparing how far the first unbuilt unit
// lies from each end, swapping its held alignment strategy to match. The
// comparison
// preserves the exact sign convention of the system this was ported from:
// when the first unbuilt unit counted from the right is further from its
// end than the first unbuilt unit counted from the left is from its end,
// more work remains on the right, and the robot sweeps right to left
// aligning left so it reaches that work first — and symmetrically
// otherwise.
type DynamicSnake struct {
	alignment align.Strategy
}

// NewDynamicSnake constructs a DynamicSnake move strategy. Its held
// alignment strategy is replaced on every NextMove call, so the initial
// value is never observed.
func NewDynamicSnake() *DynamicSnake {
	return &DynamicSnake{alignment: align.NewRight()}
}

// NextMove implements Strategy.
func (m *DynamicSnake) NextMove(reach align.Reach, w *wall.Wall) (geometry.Rectangle, bool) {
	course := w.NextNonCompleteCourse()
	if course == nil {
		return geometry.Rectangle{}, false
	}
	units := course.Units
	leftOffset := indexOfFirstUnbuilt(units)
	rightOffset := indexOfFirstUnbuilt(reversed(units))

	var order []*wall.Unit
	if rightOffset > leftOffset {
		m.alignment = align.NewLeft()
		order = reversed(units)
	} else {
		m.alignment = align.NewRight()
		order = units
	}
	return nextMove(m.alignment, reach, w, order)
}

// Name implements Strategy.
func (*DynamicSnake) Name() string { return "dynamic-snake" }
