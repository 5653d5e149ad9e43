// Package bond implements the four masonry bond rules (component C):
// stretcher, cross, flemish, and wild. Each one satisfies wall.Bond and can
// be handed straight to wall.CreateWall.
//
// Three of the four are pure functions of (course index, slot position,
// cursor, wall length) — no randomness, no history. The wild bond is the
// odd one out: it shuffles a per-slot candidate set and scores each
// candidate against the head-joint layout of the courses already built,
// and can legitimately fail a whole course (ErrWallPlanning), which is why
// it alone reports a nonzero Retries().
package bond
