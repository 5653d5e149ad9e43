package bond

import (
	"math/rand"
	"sort"
	"time"

	"github.com/franceswong9/buildplanner/geometry"
	"github.com/franceswong9/buildplanner/wall"
)

// Wild is the randomised bond: at every slot it shuffles a small candidate
// set and keeps whichever candidate produces the shortest run of
// vertically-aligned head joints (a "stair" when the offset direction holds
// steady course to course, a "tooth" when it alternates) in the courses
// already built below. If every candidate would produce a run of
// WildBondMaxPatternLen or longer, the whole course fails and the caller
// (wall.CreateWall) discards the attempt and starts the wall over.
type Wild struct {
	rng     *rand.Rand
	retries int
}

// NewWild constructs a Wild bond. Without WithSeed/WithRand, it seeds its
// own randomness source from the current time — fine for the CLI, but
// callers that need the reproducibility Testable Property 7 requires
// should always pass WithSeed.
func NewWild(opts ...WildOption) *Wild {
	w := &Wild{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		retries: WildBondRetryBudget,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NextBrick implements wall.Bond.
func (w *Wild) NextBrick(courseSoFar []*wall.Unit, courseIndex int, cursor geometry.Point, wallLength float64, previousCourses []*wall.Course) (*wall.Unit, error) {
	candidates := w.candidateLengths(courseSoFar, courseIndex)
	w.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	scored := make([]scoredCandidate, len(candidates))
	for i, length := range candidates {
		headJointX := cursor.X + length
		scored[i] = scoredCandidate{length: length, patternLength: patternLength(headJointX, previousCourses)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].patternLength < scored[j].patternLength
	})

	chosen := scored[0]
	if chosen.patternLength >= WildBondMaxPatternLen {
		return nil, wall.ErrWallPlanning
	}

	return fitBrickAtEnd(newBrickOfLength(cursor, chosen.length), wallLength)
}

// Retries implements wall.Bond.
func (w *Wild) Retries() int {
	return w.retries
}

// Name implements wall.Bond.
func (w *Wild) Name() string {
	return "wild"
}

type scoredCandidate struct {
	length        float64
	patternLength int
}

// candidateLengths implements the per-slot candidate set from spec.md 4.C.
func (w *Wild) candidateLengths(courseSoFar []*wall.Unit, courseIndex int) []float64 {
	switch {
	case isFirstBrick(courseSoFar) && isOddCourse(courseIndex):
		return []float64{wall.QuarterBrickLength, wall.ThreeQuarterBrickLength}
	case previousBrickWasHalf(courseSoFar):
		return []float64{wall.FullBrickLength}
	default:
		return []float64{wall.FullBrickLength, wall.HalfBrickLength}
	}
}

func previousBrickWasHalf(courseSoFar []*wall.Unit) bool {
	prev := previousBrick(courseSoFar)
	return prev != nil && prev.Box.Length == wall.HalfBrickLength
}

func newBrickOfLength(cursor geometry.Point, length float64) *wall.Unit {
	switch length {
	case wall.FullBrickLength:
		return wall.NewFullBrick(cursor)
	case wall.ThreeQuarterBrickLength:
		return wall.NewThreeQuarterBrick(cursor)
	case wall.HalfBrickLength:
		return wall.NewHalfBrick(cursor)
	default:
		return wall.NewQuarterBrick(cursor)
	}
}

// patternLength is pattern_length(b) from spec.md 4.C: the longest run,
// across the four direction×multiplier stair/tooth modes, of consecutive
// courses below headJointX whose head joints continue that stair or tooth.
func patternLength(headJointX float64, previousCourses []*wall.Course) int {
	longest := 0
	for _, direction := range []float64{1, -1} {
		for _, multiplier := range []float64{1, -1} {
			if l := patternLengthForMode(headJointX, previousCourses, direction, multiplier); l > longest {
				longest = l
			}
		}
	}

	return longest
}

func patternLengthForMode(headJointX float64, previousCourses []*wall.Course, direction, multiplier float64) int {
	limit := len(previousCourses)
	if limit > WildBondMaxPatternLen {
		limit = WildBondMaxPatternLen
	}

	checkX := headJointX
	dir := direction
	for i := 1; i <= limit; i++ {
		checkX += dir * WildBondCheckDistance
		course := previousCourses[len(previousCourses)-i]
		if !course.JointExistsAt(checkX) {
			return i - 1
		}
		dir *= multiplier
	}

	return limit
}
