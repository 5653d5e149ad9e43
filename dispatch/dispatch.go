package dispatch

import (
	"github.com/franceswong9/buildplanner/align"
	"github.com/franceswong9/buildplanner/bond"
	"github.com/franceswong9/buildplanner/move"
	"github.com/franceswong9/buildplanner/wall"
)

// Bonds maps the CLI surface's bond names to constructors.
var Bonds = map[string]func() wall.Bond{
	"stretcher": func() wall.Bond { return bond.NewStretcher() },
	"cross":     func() wall.Bond { return bond.NewCross() },
	"flemish":   func() wall.Bond { return bond.NewFlemish() },
	"wild":      func() wall.Bond { return bond.NewWild() },
}

// AlignmentStrategies maps the CLI surface's alignment names to
// constructors.
var AlignmentStrategies = map[string]func() align.Strategy{
	"left":   func() align.Strategy { return align.NewLeft() },
	"right":  func() align.Strategy { return align.NewRight() },
	"center": func() align.Strategy { return align.NewCenter() },
	"random": func() align.Strategy { return align.NewRandom(nil) },
}

// MoveStrategies maps the CLI surface's move names to constructors, each
// taking the alignment strategy it should use. dynamic_snake ignores its
// argument: it replaces its alignment at runtime, course by course.
var MoveStrategies = map[string]func(align.Strategy) move.Strategy{
	"left_to_right": func(a align.Strategy) move.Strategy { return move.NewLeftToRight(a) },
	"outside_in":    func(a align.Strategy) move.Strategy { return move.NewOutsideIn(a) },
	"snake":         func(a align.Strategy) move.Strategy { return move.NewSnake(a) },
	"dynamic_snake": func(align.Strategy) move.Strategy { return move.NewDynamicSnake() },
}

// DefaultAlignment implements the CLI's "right if flemish else center"
// default alignment rule (spec.md §6).
func DefaultAlignment(bondName string) string {
	if bondName == "flemish" {
		return "right"
	}
	return "center"
}
