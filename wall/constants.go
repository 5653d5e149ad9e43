package wall

// Brick length alphabet, in millimetres. These four lengths are the only
// ones the brick constructors (NewFullBrick, NewThreeQuarterBrick,
// NewHalfBrick, NewQuarterBrick) produce; everything downstream (pattern
// matching in the wild bond, scenario tests) assumes the alphabet is closed.
const (
	FullBrickLength         = 210.0
	ThreeQuarterBrickLength = 155.0
	HalfBrickLength         = 100.0
	QuarterBrickLength      = 45.0
)

// Fixed dimensions of the masonry, in millimetres.
const (
	// HeadJointWidth is the vertical mortar joint between two bricks in the
	// same course.
	HeadJointWidth = 10.0
	// BrickHeight is the height of every brick, regardless of length.
	BrickHeight = 50.0
	// BedJointThickness is the horizontal mortar layer between courses.
	BedJointThickness = 12.5
	// CourseHeight is the vertical pitch from one course's brick bottom to
	// the next.
	CourseHeight = BrickHeight + BedJointThickness
)
