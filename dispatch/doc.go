// Package dispatch holds the name-to-constructor tables that let an
// external driver (the CLI, or any other caller) select a bond, move
// strategy, or alignment strategy by string, mirroring the reference
// planner's BONDS/MOVE_STRATEGIES/ALIGNMENT_STRATEGIES dicts. It contains
// no planning logic of its own.
package dispatch
