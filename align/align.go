package align

import (
	"math"

	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Reach is the slice of robot state an alignment strategy needs: its
// current reach rectangle's fixed dimensions. It is satisfied by
// *robot.Robot without this package importing robot, which would create an
// import cycle (robot needs align.Strategy; align only needs a robot's
// dimensions).
type Reach interface {
	ReachLength() float64
	ReachHeight() float64
}

// Strategy derives a new reach rectangle from a target unit the robot wants
// to be able to build next.
type Strategy interface {
	// NextReachableArea computes the robot's next reach rectangle so that
	// target sits within it, clamped to stay inside w.
	NextReachableArea(target *wall.Unit, reach Reach, w *wall.Wall) geometry.Rectangle
	// Name identifies the strategy (used by the dispatch tables and in
	// progress logging).
	Name() string
}

// alignXFunc computes the strategy-specific x coordinate before clamping.
type alignXFunc func(target *wall.Unit, reach Reach) float64

// nextReachableArea is the shared clamp-and-build logic every strategy in
// this package reuses: only align_x_with_unit differs between them.
func nextReachableArea(target *wall.Unit, reach Reach, w *wall.Wall, alignX alignXFunc) geometry.Rectangle {
	maxX := w.Length - reach.ReachLength()
	maxY := w.Height - reach.ReachHeight()

	nextX := math.Max(0, alignX(target, reach))
	nextX = math.Min(nextX, maxX)
	nextY := math.Min(target.Box.BottomLeft.Y-wall.BedJointThickness, maxY)

	return geometry.NewRectangle(geometry.NewPoint(nextX, nextY), reach.ReachLength(), reach.ReachHeight())
}

func leftX(target *wall.Unit, _ Reach) float64 {
	return target.Box.BottomLeft.X
}

func rightX(target *wall.Unit, reach Reach) float64 {
	return target.Box.BottomLeft.X + target.Box.Length - reach.ReachLength()
}

func centerX(target *wall.Unit, reach Reach) float64 {
	return target.Box.BottomLeft.X + target.Box.Length/2 - reach.ReachLength()/2
}
