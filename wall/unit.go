package wall

import "github.com/franceswong9/buildplanner/geometry"

// UnitKind discriminates the two things that can occupy a slot in a course.
type UnitKind int

const (
	// KindBrick marks a unit as a brick.
	KindBrick UnitKind = iota
	// KindHeadJoint marks a unit as a vertical mortar joint between bricks.
	KindHeadJoint
)

// Unit is a single brick or head joint placed in a course. Its rectangle is
// fixed at construction; IsBuilt is the only field that ever changes, and
// only false→true.
type Unit struct {
	kind    UnitKind
	Box     geometry.Rectangle
	IsBuilt bool
}

// NewFullBrick places a full-length brick with its bottom-left corner at origin.
func NewFullBrick(origin geometry.Point) *Unit {
	return newBrick(origin, FullBrickLength)
}

// NewThreeQuarterBrick places a three-quarter-length brick at origin.
func NewThreeQuarterBrick(origin geometry.Point) *Unit {
	return newBrick(origin, ThreeQuarterBrickLength)
}

// NewHalfBrick places a half-length brick at origin.
func NewHalfBrick(origin geometry.Point) *Unit {
	return newBrick(origin, HalfBrickLength)
}

// NewQuarterBrick places a quarter-length brick at origin.
func NewQuarterBrick(origin geometry.Point) *Unit {
	return newBrick(origin, QuarterBrickLength)
}

func newBrick(origin geometry.Point, length float64) *Unit {
	return &Unit{
		kind: KindBrick,
		Box:  geometry.NewRectangle(origin, length, BrickHeight),
	}
}

// NewHeadJoint places a head joint at origin. Head joints share a brick's
// height so that both sit flush within the course band.
func NewHeadJoint(origin geometry.Point) *Unit {
	return &Unit{
		kind: KindHeadJoint,
		Box:  geometry.NewRectangle(origin, HeadJointWidth, BrickHeight),
	}
}

// Kind reports whether this unit is a brick or a head joint.
func (u *Unit) Kind() UnitKind {
	return u.kind
}

// IsBrick is a convenience predicate over Kind.
func (u *Unit) IsBrick() bool {
	return u.kind == KindBrick
}

// IsHeadJoint is a convenience predicate over Kind.
func (u *Unit) IsHeadJoint() bool {
	return u.kind == KindHeadJoint
}

// SlicedTo returns a new unit of the same kind, truncated the way
// geometry.Rectangle.SliceAtX truncates: same bottom-left corner, length
// clamped to end at x. Used by bonds to fit a brick into the remaining
// space at the end of a course.
func (u *Unit) SlicedTo(x float64) (*Unit, error) {
	box, err := u.Box.SliceAtX(x)
	if err != nil {
		return nil, err
	}

	return &Unit{kind: u.kind, Box: box}, nil
}

// Supports reports whether u supports upper: true iff their x-intervals
// overlap under geometry.Rectangle's strict OverlapsInXAxis.
func (u *Unit) Supports(upper *Unit) bool {
	return u.Box.OverlapsInXAxis(upper.Box)
}

// IsSupported reports whether u rests on already-built material in
// courseBelow. The bottom course (courseBelow == nil) is always supported.
// Otherwise, every unit below that supports u must already be built.
func (u *Unit) IsSupported(courseBelow *Course) bool {
	if courseBelow == nil {
		return true
	}

	for _, below := range courseBelow.Units {
		if below.Supports(u) && !below.IsBuilt {
			return false
		}
	}

	return true
}
