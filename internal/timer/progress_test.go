package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggedMinutes_ZeroStaysZero(t *testing.T) {
	assert.Equal(t, 0, LoggedMinutes(0))
	assert.Equal(t, 0, LoggedMinutes(-time.Second))
}

func TestLoggedMinutes_PartialMinuteRoundsUp(t *testing.T) {
	for _, secs := range []int{1, 15, 30, 59} {
		assert.Equal(t, 1, LoggedMinutes(time.Duration(secs)*time.Second), "secs=%d", secs)
	}
	// Even a sub-second sliver of effort counts as a minute.
	assert.Equal(t, 1, LoggedMinutes(300*time.Millisecond))
}

func TestLoggedMinutes_ExactAndOverflow(t *testing.T) {
	assert.Equal(t, 1, LoggedMinutes(60*time.Second))
	assert.Equal(t, 2, LoggedMinutes(61*time.Second))
	assert.Equal(t, 2, LoggedMinutes(90*time.Second))
	assert.Equal(t, 60, LoggedMinutes(time.Hour))
	assert.Equal(t, 61, LoggedMinutes(time.Hour+time.Second))
}

func TestCalculate_NoTarget(t *testing.T) {
	for _, target := range []int{0, -5} {
		p := Calculate(35*time.Minute, target)
		assert.False(t, p.HasTarget, "target=%d", target)
		assert.False(t, p.Overtime)
		assert.Equal(t, 35, p.LoggedMin)
	}
}

func TestCalculate_WithTarget(t *testing.T) {
	p := Calculate(15*time.Minute, 30)
	assert.True(t, p.HasTarget)
	assert.InDelta(t, 0.5, p.Ratio, 1e-9)
	assert.False(t, p.Overtime)
}

func TestCalculate_Overtime(t *testing.T) {
	p := Calculate(35*time.Minute, 30)
	assert.True(t, p.Overtime)
	assert.InDelta(t, 35.0/30.0, p.Ratio, 1e-9)
}

func TestCalculate_RatioClampedAtTwo(t *testing.T) {
	p := Calculate(90*time.Minute, 30)
	assert.True(t, p.Overtime)
	assert.Equal(t, 2.0, p.Ratio)
}

func TestCalculate_AtTargetIsNotOvertime(t *testing.T) {
	p := Calculate(30*time.Minute, 30)
	assert.False(t, p.Overtime)
	assert.Equal(t, 1.0, p.Ratio)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "01:15", FormatClock(75*time.Second))
	assert.Equal(t, "01:30", FormatClock(90*time.Second))
	assert.Equal(t, "59:59", FormatClock(3599*time.Second))
	assert.Equal(t, "01:00:00", FormatClock(3600*time.Second))
	assert.Equal(t, "01:01:01", FormatClock(3661*time.Second))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
}

func TestScenario_StartAdvanceStop(t *testing.T) {
	clock := newFakeClock()
	s := NewSessionWithClock(clock.Now)

	s.Toggle()
	clock.Advance(90 * time.Second)
	s.Toggle()

	assert.Equal(t, 2, LoggedMinutes(s.Elapsed()))
	assert.Equal(t, "01:30", FormatClock(s.Elapsed()))
}
