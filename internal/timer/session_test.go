package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock steps time manually for deterministic session tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestSession_StartsStoppedAtZero(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestSession_ToggleAccumulates(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionWithClock(clock.Now)

	s.Toggle()
	assert.True(t, s.Running())

	clock.Advance(90 * time.Second)
	assert.Equal(t, 90*time.Second, s.Elapsed())

	s.Toggle() // stop
	assert.False(t, s.Running())
	assert.Equal(t, 90*time.Second, s.Elapsed())

	// Frozen while stopped: wall time moves on, elapsed does not.
	clock.Advance(5 * time.Minute)
	assert.Equal(t, 90*time.Second, s.Elapsed())
}

func TestSession_ResumeContinuesFromFrozen(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionWithClock(clock.Now)

	s.Toggle()
	clock.Advance(30 * time.Second)
	s.Toggle()

	clock.Advance(time.Hour) // paused, should not count

	s.Toggle()
	clock.Advance(15 * time.Second)
	assert.Equal(t, 45*time.Second, s.Elapsed())
}

func TestSession_ResetWhileStopped(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionWithClock(clock.Now)

	s.Toggle()
	clock.Advance(2 * time.Minute)
	s.Toggle()

	s.Reset()
	assert.False(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestSession_ResetWhileRunningKeepsRunning(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionWithClock(clock.Now)

	s.Toggle()
	clock.Advance(2 * time.Minute)

	s.Reset()
	assert.True(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())

	clock.Advance(10 * time.Second)
	assert.Equal(t, 10*time.Second, s.Elapsed())
}

func TestSession_ResetAtZeroIsNoOp(t *testing.T) {
	s := NewSession()
	s.Reset()
	assert.False(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestSession_ElapsedMonotonicWhileRunning(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionWithClock(clock.Now)

	s.Toggle()
	prev := s.Elapsed()
	for i := 0; i < 10; i++ {
		clock.Advance(250 * time.Millisecond)
		cur := s.Elapsed()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
