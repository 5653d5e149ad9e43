package align

import (
	"math/rand"
	"time"

	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Left aligns the reach rectangle's left edge with the target's left edge.
type Left struct{}

// NewLeft constructs a Left alignment strategy.
func NewLeft() *Left { return &Left{} }

// NextReachableArea implements Strategy.
func (Left) NextReachableArea(target *wall.Unit, reach Reach, w *wall.Wall) geometry.Rectangle {
	return nextReachableArea(target, reach, w, leftX)
}

// Name implements Strategy.
func (Left) Name() string { return "left" }

// Right aligns the reach rectangle's right edge with the target's right edge.
type Right struct{}

// NewRight constructs a Right alignment strategy.
func NewRight() *Right { return &Right{} }

// NextReachableArea implements Strategy.
func (Right) NextReachableArea(target *wall.Unit, reach Reach, w *wall.Wall) geometry.Rectangle {
	return nextReachableArea(target, reach, w, rightX)
}

// Name implements Strategy.
func (Right) Name() string { return "right" }

// Center centers the reach rectangle over the target.
type Center struct{}

// NewCenter constructs a Center alignment strategy.
func NewCenter() *Center { return &Center{} }

// NextReachableArea implements Strategy.
func (Center) NextReachableArea(target *wall.Unit, reach Reach, w *wall.Wall) geometry.Rectangle {
	return nextReachableArea(target, reach, w, centerX)
}

// Name implements Strategy.
func (Center) Name() string { return "center" }

// Random places the reach rectangle's x uniformly between the Right- and
// Left-aligned positions. When the reach is wider than the target — the
// expected case — the right-aligned x is less than or equal to the
// left-aligned x, and Random samples that interval.
type Random struct {
	rng *rand.Rand
}

// NewRandom constructs a Random alignment strategy using rng. A nil rng
// falls back to a time-seeded source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Random{rng: rng}
}

// NextReachableArea implements Strategy.
func (r *Random) NextReachableArea(target *wall.Unit, reach Reach, w *wall.Wall) geometry.Rectangle {
	return nextReachableArea(target, reach, w, func(target *wall.Unit, reach Reach) float64 {
		lo, hi := rightX(target, reach), leftX(target, reach)
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo + r.rng.Float64()*(hi-lo)
	})
}

// Name implements Strategy.
func (*Random) Name() string { return "random" }
