package geometry

// Point is an immutable coordinate in the wall's vertical plane, in
// millimetres. The origin sits at the wall's bottom-left corner; +X points
// right, +Y points up.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PlusX returns a new Point offset by distance along the x axis.
func (p Point) PlusX(distance float64) Point {
	return Point{X: p.X + distance, Y: p.Y}
}

// PlusY returns a new Point offset by distance along the y axis.
func (p Point) PlusY(distance float64) Point {
	return Point{X: p.X, Y: p.Y + distance}
}
