package bond

// Wild bond tuning constants, named exactly as spec'd: the retry budget
// CreateWall is given before it gives up on a wild-bonded wall, the maximum
// tolerated stair/tooth pattern length, and the lateral check distance
// between a head joint and the one that would continue its stair or tooth
// in the course below (one quarter brick plus one head joint: 45 + 10).
const (
	WildBondRetryBudget   = 20
	WildBondMaxPatternLen = 6
	WildBondCheckDistance = 55
)
