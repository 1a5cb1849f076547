package harness

import (
	"time"

	"tengebench/internal/runutil"
)

// Clock returns the current time. time.Now carries a monotonic reading, which
// is what Sub uses.
type Clock func() time.Time

// Stopwatch measures one timed window.
type Stopwatch struct {
	now   Clock
	start time.Time
}

// Start takes the first reading. A nil clock means time.Now.
func Start(now Clock) Stopwatch {
	if now == nil {
		now = time.Now
	}
	return Stopwatch{now: now, start: now()}
}

// Elapsed takes the second reading and returns the window in nanoseconds.
// A clock that runs backwards yields 0.
func (s Stopwatch) Elapsed() uint64 {
	d := s.now().Sub(s.start)
	if d < 0 {
		return 0
	}
	return uint64(d.Nanoseconds())
}

// PerRep is the integer average over reps (non-positive reps count as 1).
func PerRep(total uint64, reps int) uint64 {
	return total / uint64(runutil.EffectiveReps(reps))
}
