package geometry

import "fmt"

// Rectangle is an immutable axis-aligned box: a bottom-left corner plus a
// length (x extent) and a height (y extent). Every other query on Rectangle
// is derived from these three fields.
type Rectangle struct {
	BottomLeft Point
	Length     float64
	Height     float64
}

// NewRectangle constructs a Rectangle anchored at bottomLeft with the given
// length and height.
func NewRectangle(bottomLeft Point, length, height float64) Rectangle {
	return Rectangle{BottomLeft: bottomLeft, Length: length, Height: height}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rectangle) TopLeft() Point {
	return r.BottomLeft.PlusY(r.Height)
}

// BottomRight returns the rectangle's bottom-right corner.
func (r Rectangle) BottomRight() Point {
	return r.BottomLeft.PlusX(r.Length)
}

// TopRight returns the rectangle's top-right corner.
func (r Rectangle) TopRight() Point {
	return r.BottomLeft.PlusX(r.Length).PlusY(r.Height)
}

// Middle returns the rectangle's geometric center.
func (r Rectangle) Middle() Point {
	return r.BottomLeft.PlusX(r.Length / 2).PlusY(r.Height / 2)
}

// Bounds reports whether other lies entirely within r, using closed-interval
// containment: other's bottom-left and top-right corners must each lie on or
// inside r's boundary.
func (r Rectangle) Bounds(other Rectangle) bool {
	return r.boundsPoint(other.BottomLeft) && r.boundsPoint(other.TopRight())
}

func (r Rectangle) boundsPoint(p Point) bool {
	return r.boundsX(p.X) && r.boundsY(p.Y)
}

func (r Rectangle) boundsX(x float64) bool {
	return r.BottomLeft.X <= x && x <= r.BottomRight().X
}

func (r Rectangle) boundsY(y float64) bool {
	return r.BottomLeft.Y <= y && y <= r.TopLeft().Y
}

// OverlapsInXAxis reports whether r and other's x-intervals overlap, using
// strict inequalities on both sides: two rectangles that merely touch at a
// shared boundary x-coordinate do NOT overlap. This is the one place the
// reference implementation's non-strict check was deliberately tightened —
// adjacent bricks sharing a head-joint boundary must never read as mutually
// supporting.
func (r Rectangle) OverlapsInXAxis(other Rectangle) bool {
	return r.BottomRight().X > other.BottomLeft.X && other.BottomRight().X > r.BottomLeft.X
}

// SliceAtX returns a rectangle sharing r's bottom-left corner, with length
// clamped to min(r.Length, x-r.BottomLeft.X). It fails with ErrNegativeSlice
// if x lies strictly left of r.BottomLeft.X, which would otherwise produce a
// rectangle of negative length.
func (r Rectangle) SliceAtX(x float64) (Rectangle, error) {
	delta := x - r.BottomLeft.X
	if delta < 0 {
		return Rectangle{}, fmt.Errorf("slice at x=%g from origin x=%g: %w", x, r.BottomLeft.X, ErrNegativeSlice)
	}

	length := r.Length
	if delta < length {
		length = delta
	}

	return Rectangle{BottomLeft: r.BottomLeft, Length: length, Height: r.Height}, nil
}
