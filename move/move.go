package move

import (
	"github.com/franceswong9/buildplanner/align"
	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Strategy chooses which unbuilt unit in the wall's lowest non-complete
// course the robot's next reach rectangle should target, and returns the
// reach rectangle that targets it. The bool result is false when there is
// no more work this strategy can find (wall complete).
type Strategy interface {
	NextMove(reach align.Reach, w *wall.Wall) (geometry.Rectangle, bool)
	Name() string
}

func firstUnbuilt(units []*wall.Unit) (*wall.Unit, bool) {
	for _, u := range units {
		if !u.IsBuilt {
			return u, true
		}
	}
	return nil, false
}

func indexOfFirstUnbuilt(units []*wall.Unit) int {
	for i, u := range units {
		if !u.IsBuilt {
			return i
		}
	}
	return -1
}

func reversed(units []*wall.Unit) []*wall.Unit {
	out := make([]*wall.Unit, len(units))
	for i, u := range units {
		out[len(units)-1-i] = u
	}
	return out
}
