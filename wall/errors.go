// Package wall: sentinel error set.
//
// Error policy mirrors the teacher corpus's builder package: only sentinel
// variables are exposed, callers branch with errors.Is, and context is
// attached by wrapping with fmt.Errorf("...: %w", ErrX) at the call site
// rather than by constructing new, unrelated error values.
package wall

import "errors"

// ErrWallPlanning is raised by a Bond when it cannot legally place the next
// brick in a course (today, only the wild bond: when every shuffled
// candidate produces a pattern length of 6 or more). CreateWall catches it
// exactly once, in its retry loop; once the bond's retry budget is
// exhausted it is re-wrapped with the bond's name and returned to the
// caller.
var ErrWallPlanning = errors.New("wall: could not legally continue course")
