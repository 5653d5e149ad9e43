package robot

import (
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/move"
	"github.com/franceswong9/buildplanner/wall"
)

// StrideEvent describes one successful LayBrick or Move call, passed to an
// OnStride hook if one is configured.
type StrideEvent struct {
	// MoveCount is the robot's move counter at the time of the event.
	MoveCount int
	// Unit is the unit laid, for a lay event; nil for a move event.
	Unit *wall.Unit
	// Reach is the robot's reach rectangle after the event.
	Reach geometry.Rectangle
}

// Robot is a stationary machine with a rectangular reach that tiles a wall
// one unit at a time. Its reach starts at the origin and only ever changes
// via a successful Move.
type Robot struct {
	reach    geometry.Rectangle
	strategy move.Strategy

	moveCount int
	onStride  func(StrideEvent)
}

// Option configures a Robot at construction time.
type Option func(*Robot)

// WithOnStride installs a hook fired after every successful LayBrick or
// Move call. A nil hook is a no-op, matching the teacher's DFSOptions.OnVisit
// convention of plain closures rather than an interface.
func WithOnStride(hook func(StrideEvent)) Option {
	return func(r *Robot) {
		if hook != nil {
			r.onStride = hook
		}
	}
}

// New constructs a Robot with a reach of the given dimensions anchored at
// the origin, driven by strategy.
func New(reachLength, reachHeight float64, strategy move.Strategy, opts ...Option) *Robot {
	r := &Robot{
		reach:    geometry.NewRectangle(geometry.NewPoint(0, 0), reachLength, reachHeight),
		strategy: strategy,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReachLength implements align.Reach.
func (r *Robot) ReachLength() float64 { return r.reach.Length }

// ReachHeight implements align.Reach.
func (r *Robot) ReachHeight() float64 { return r.reach.Height }

// Reach returns the robot's current reach rectangle.
func (r *Robot) Reach() geometry.Rectangle { return r.reach }

// MoveCount returns the number of successful moves made so far.
func (r *Robot) MoveCount() int { return r.moveCount }

// LayBrick scans every course bottom-to-top, looking for the first unit
// that is unbuilt, fully enclosed by the robot's reach (including the
// bed-joint rectangle immediately beneath it), and supported by already
// built material below. It builds at most one unit per call. A head joint
// found this way is marked built silently: LayBrick reports no progress,
// even though state changed, so head joints never surface as laid bricks.
func (r *Robot) LayBrick(w *wall.Wall) (*wall.Unit, bool) {
	for i, course := range w.Courses {
		var below *wall.Course
		if i > 0 {
			below = w.Courses[i-1]
		}

		for _, u := range course.Units {
			if u.IsBuilt {
				continue
			}
			if !r.encloses(u) {
				continue
			}
			if !u.IsSupported(below) {
				continue
			}

			u.IsBuilt = true
			if !u.IsBrick() {
				return nil, false
			}

			r.fireStride(u)
			return u, true
		}
	}

	return nil, false
}

// encloses reports whether u's box and its bed-joint rectangle both lie
// within the robot's current reach.
func (r *Robot) encloses(u *wall.Unit) bool {
	bedJoint := geometry.NewRectangle(
		geometry.NewPoint(u.Box.BottomLeft.X, u.Box.BottomLeft.Y-wall.BedJointThickness),
		u.Box.Length,
		wall.BedJointThickness,
	)
	return r.reach.Bounds(u.Box) && r.reach.Bounds(bedJoint)
}

// Move asks the held strategy for the next reach rectangle. It returns
// false, leaving the reach untouched, when the strategy finds no more work.
func (r *Robot) Move(w *wall.Wall) bool {
	next, ok := r.strategy.NextMove(r, w)
	if !ok {
		return false
	}

	r.reach = next
	r.moveCount++
	r.fireStride(nil)
	return true
}

func (r *Robot) fireStride(laid *wall.Unit) {
	if r.onStride == nil {
		return
	}
	r.onStride(StrideEvent{MoveCount: r.moveCount, Unit: laid, Reach: r.reach})
}
