package wall

// Course is a single horizontal row: the ordered units (bricks interleaved
// with head joints) that tile the wall's length at one height.
type Course struct {
	// Height is the y-offset of the bottom of this course's bed joint; its
	// bricks and head joints sit BedJointThickness above it.
	Height float64
	// Units is the ordered left-to-right sequence of bricks and head joints.
	Units []*Unit

	builtCache bool
}

// NewCourse constructs a Course at the given height with the given units.
func NewCourse(height float64, units []*Unit) *Course {
	return &Course{Height: height, Units: units}
}

// Index returns the zero-based course number, derived from Height.
func (c *Course) Index() int {
	return int(c.Height / CourseHeight)
}

// IsBuilt reports whether every unit in the course has been built. The
// result is a one-shot latch: once every unit is observed built, IsBuilt
// keeps returning true without re-scanning.
func (c *Course) IsBuilt() bool {
	if c.builtCache {
		return true
	}

	for _, u := range c.Units {
		if !u.IsBuilt {
			return false
		}
	}

	c.builtCache = true
	return true
}

// JointExistsAt reports whether some unit in the course is a head joint
// whose bottom-left x coordinate exactly equals x.
func (c *Course) JointExistsAt(x float64) bool {
	for _, u := range c.Units {
		if u.IsHeadJoint() && u.Box.BottomLeft.X == x {
			return true
		}
	}

	return false
}
