// Package geometry provides the axis-aligned primitives every other
// buildplanner package is built on: points in the wall's vertical plane and
// the rectangles derived from them.
//
// Everything here is immutable — a Point or Rectangle, once constructed, is
// never mutated in place. Callers that need a "moved" point or a "resized"
// rectangle get a new value back.
package geometry
