// options.go — functional options for the wild bond, in the same spirit as
// the teacher corpus's builder/options.go: small, self-validating closures
// that mutate a private config before construction completes.
package bond

import "math/rand"

// WildOption customizes a Wild bond at construction time.
type WildOption func(*Wild)

// WithRand supplies an explicit randomness source, letting callers make the
// wild bond's candidate shuffles reproducible. A nil rng is a no-op.
func WithRand(r *rand.Rand) WildOption {
	return func(w *Wild) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithSeed seeds a fresh *rand.Rand and installs it as the wild bond's
// randomness source. Use this in tests to pin down Testable Property 7.
func WithSeed(seed int64) WildOption {
	return func(w *Wild) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRetries overrides the default WildBondRetryBudget. Intended for tests
// that want to observe exhaustion without waiting through 20 attempts.
func WithRetries(n int) WildOption {
	return func(w *Wild) {
		w.retries = n
	}
}
