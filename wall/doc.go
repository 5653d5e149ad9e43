// Package wall holds the brick/course/wall data model (component B of the
// planner) and the course-by-course wall builder (component D). It defines
// the Bond interface that the bond package implements, and the sentinel
// ErrWallPlanning that a bond raises when it cannot legally continue a
// course.
//
// Everything constructed here is immutable geometry except for one field:
// Unit.IsBuilt, which the robot package flips from false to true and never
// back.
package wall
