package driver

import (
	"sort"

	"github.com/franceswong9/buildplanner/align"
	"github.com/franceswong9/buildplanner/move"
	"github.com/franceswong9/buildplanner/robot"
	"github.com/franceswong9/buildplanner/wall"
)

// SweepResult is one combination's outcome from Sweep.
type SweepResult struct {
	Alignment string
	Move      string
	Strides   int
}

// Sweep reimplements the reference planner's try_all_move_strategies: for
// every combination in the 4x4 product of alignment and move strategies, it
// builds a fresh wall with bond and a fresh robot, drives it to completion,
// and records the resulting stride count. Results are sorted ascending by
// stride count, cheapest strategy combination first.
//
// Dynamic snake ignores the alignment argument it is paired with (it
// replaces its own alignment at runtime), so for a deterministic bond its
// four rows report the same stride count; they are still produced for
// parity with the original product enumeration.
func Sweep(length, height, reachLength, reachHeight float64, bond wall.Bond) ([]SweepResult, error) {
	alignments := []align.Strategy{align.NewLeft(), align.NewRight(), align.NewCenter(), align.NewRandom(nil)}

	results := make([]SweepResult, 0, len(alignments)*4)
	for _, a := range alignments {
		moveStrategies := []move.Strategy{
			move.NewLeftToRight(a),
			move.NewOutsideIn(a),
			move.NewSnake(a),
			move.NewDynamicSnake(),
		}

		for _, m := range moveStrategies {
			w, err := wall.CreateWall(length, height, bond)
			if err != nil {
				return nil, err
			}

			r := robot.New(reachLength, reachHeight, m)
			report, err := Run(r, w)
			if err != nil {
				return nil, err
			}

			results = append(results, SweepResult{
				Alignment: a.Name(),
				Move:      m.Name(),
				Strides:   report.Strides,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Strides < results[j].Strides
	})

	return results, nil
}
