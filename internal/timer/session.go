// Package timer holds the stopwatch session and the progress math behind
// the habit timer view. Elapsed time is derived from a clock, never from
// UI refresh ticks, so delayed or dropped redraws cannot skew it.
package timer

import "time"

// Session is a stopwatch with start/stop/reset semantics. It accumulates a
// frozen duration plus, while running, a live segment measured from the
// clock. The zero value is not usable; construct with NewSession.
type Session struct {
	now       func() time.Time
	frozen    time.Duration
	startedAt time.Time
	running   bool
}

// NewSession creates a stopped session with zero elapsed time.
func NewSession() *Session {
	return NewSessionWithClock(time.Now)
}

// NewSessionWithClock creates a session using the given clock function.
// Tests inject a fake clock to step time deterministically.
func NewSessionWithClock(now func() time.Time) *Session {
	return &Session{now: now}
}

// Running reports whether the session is currently accumulating time.
func (s *Session) Running() bool {
	return s.running
}

// Elapsed returns the accumulated duration. It is monotonically
// non-decreasing while running and frozen while stopped.
func (s *Session) Elapsed() time.Duration {
	if !s.running {
		return s.frozen
	}
	d := s.frozen + s.now().Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Toggle stops a running session, freezing its elapsed time, or resumes a
// stopped one from the frozen value.
func (s *Session) Toggle() {
	if s.running {
		s.frozen = s.Elapsed()
		s.running = false
		return
	}
	s.startedAt = s.now()
	s.running = true
}

// Reset sets elapsed time back to zero without changing the run state.
// A running session keeps running, restarting its live segment from now.
func (s *Session) Reset() {
	s.frozen = 0
	if s.running {
		s.startedAt = s.now()
	}
}
