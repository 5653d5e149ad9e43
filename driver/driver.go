package driver

import (
	"time"

	"github.com/franceswong9/buildplanner/robot"
	"github.com/franceswong9/buildplanner/wall"
	"github.com/google/uuid"
)

// Report summarises a single completed (or stalled) driver run.
type Report struct {
	// SessionID identifies this run, so concurrent sweep results can be told
	// apart in logs.
	SessionID string
	// BricksLaid is the number of successful LayBrick calls that returned a
	// brick (head joints are not counted, matching spec.md's distinction).
	BricksLaid int
	// Strides is the number of distinct reach positions the robot occupied:
	// move_count + 1.
	Strides int
	// Elapsed is the wall-clock time the run took.
	Elapsed time.Duration
}

type config struct {
	sessionID string
}

// Option configures a Run call.
type Option func(*config)

// WithSessionID overrides the generated session ID. Tests use this to get
// deterministic Report.SessionID values.
func WithSessionID(id string) Option {
	return func(c *config) {
		c.sessionID = id
	}
}

// Run drives r against w until neither laying a brick nor moving makes
// progress, per spec.md §4.H's termination rule:
//
//	loop:
//	  if robot.lay_brick(wall) is None:
//	    if not robot.move(wall): break
func Run(r *robot.Robot, w *wall.Wall, opts ...Option) (*Report, error) {
	cfg := config{sessionID: uuid.NewString()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	bricksLaid := 0
	for {
		if _, laid := r.LayBrick(w); laid {
			bricksLaid++
			continue
		}
		if !r.Move(w) {
			break
		}
	}

	return &Report{
		SessionID:  cfg.sessionID,
		BricksLaid: bricksLaid,
		Strides:    r.MoveCount() + 1,
		Elapsed:    time.Since(start),
	}, nil
}
