// Command buildplanner drives a bricklaying robot across a synthesised wall
// and prints one line per brick laid and per move to stdout, each labelled
// with its stride number, then the total stride count. It contains no planning logic
// of its own: every decision is made by the dispatch tables and the core
// packages they wire together.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/franceswong9/buildplanner/align"
	"github.com/franceswong9/buildplanner/bond"
	"github.com/franceswong9/buildplanner/dispatch"
	"github.com/franceswong9/buildplanner/robot"
	"github.com/franceswong9/buildplanner/wall"
	"github.com/spf13/cobra"
)

type flags struct {
	bondName      string
	moveName      string
	alignName     string
	wallLength    float64
	wallHeight    float64
	reachLength   float64
	reachHeight   float64
	bricksPerPush int
	seed          int64
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "buildplanner",
		Short: "Plan and drive a bricklaying robot across a wall",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.bondName, "bond", "stretcher", "masonry bond: stretcher, cross, flemish, wild")
	cmd.Flags().StringVar(&f.moveName, "move", "left_to_right", "move strategy: left_to_right, outside_in, snake, dynamic_snake")
	cmd.Flags().StringVar(&f.alignName, "align", "", "alignment strategy: left, right, center, random (default depends on bond)")
	cmd.Flags().Float64Var(&f.wallLength, "wall-length", 2300, "wall length in millimetres")
	cmd.Flags().Float64Var(&f.wallHeight, "wall-height", 2000, "wall height in millimetres")
	cmd.Flags().Float64Var(&f.reachLength, "reach-length", 800, "robot reach length in millimetres")
	cmd.Flags().Float64Var(&f.reachHeight, "reach-height", 1300, "robot reach height in millimetres")
	cmd.Flags().IntVar(&f.bricksPerPush, "bricks-per-keypress", 1, "bricks laid per driver tick")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "randomness seed for the wild bond and random alignment (0: time-seeded)")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	if f.bricksPerPush < 1 {
		return fmt.Errorf("buildplanner: --bricks-per-keypress must be a positive integer, got %d", f.bricksPerPush)
	}

	if _, ok := dispatch.Bonds[f.bondName]; !ok {
		return fmt.Errorf("buildplanner: unknown bond %q", f.bondName)
	}
	moveCtor, ok := dispatch.MoveStrategies[f.moveName]
	if !ok {
		return fmt.Errorf("buildplanner: unknown move strategy %q", f.moveName)
	}

	alignName := f.alignName
	if alignName == "" {
		alignName = dispatch.DefaultAlignment(f.bondName)
	}

	var b wall.Bond
	if f.bondName == "wild" && f.seed != 0 {
		b = bond.NewWild(bond.WithSeed(f.seed))
	} else {
		b = dispatch.Bonds[f.bondName]()
	}

	w, err := wall.CreateWall(f.wallLength, f.wallHeight, b)
	if err != nil {
		return fmt.Errorf("buildplanner: %w", err)
	}

	var alignment align.Strategy
	if alignName == "random" && f.seed != 0 {
		alignment = align.NewRandom(rand.New(rand.NewSource(f.seed)))
	} else {
		alignCtor, ok := dispatch.AlignmentStrategies[alignName]
		if !ok {
			return fmt.Errorf("buildplanner: unknown alignment strategy %q", alignName)
		}
		alignment = alignCtor()
	}
	moveStrategy := moveCtor(alignment)

	r := robot.New(f.reachLength, f.reachHeight, moveStrategy, robot.WithOnStride(func(e robot.StrideEvent) {
		if e.Unit != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "stride %d: laid brick at (%.1f, %.1f)\n",
				e.MoveCount+1, e.Unit.Box.BottomLeft.X, e.Unit.Box.BottomLeft.Y)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "stride %d: moved reach to (%.1f, %.1f)\n",
				e.MoveCount+1, e.Reach.BottomLeft.X, e.Reach.BottomLeft.Y)
		}
	}))

	for laidAny := true; laidAny; {
		laidAny = false
		for i := 0; i < f.bricksPerPush; i++ {
			if _, laid := r.LayBrick(w); laid {
				laidAny = true
				continue
			}
			break
		}
		if !laidAny {
			if !r.Move(w) {
				break
			}
			laidAny = true
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "done: %d strides\n", r.MoveCount()+1)
	return nil
}
