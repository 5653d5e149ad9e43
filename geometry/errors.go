package geometry

import "errors"

// ErrNegativeSlice is returned by Rectangle.SliceAtX when the requested x
// coordinate lies to the left of the rectangle's bottom-left corner, which
// would produce a rectangle of negative length.
//
// Classification: programmer error. Callers in the bond layer are expected
// to only ever slice a candidate brick at a point at or beyond its own
// origin; this sentinel exists so that violation fails loudly instead of
// silently producing a degenerate rectangle.
var ErrNegativeSlice = errors.New("geometry: cannot slice to a negative length")
