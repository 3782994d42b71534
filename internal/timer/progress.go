package timer

import (
	"fmt"
	"time"
)

// Progress is the derived display state for an elapsed duration measured
// against an optional target.
type Progress struct {
	// LoggedMin is the minutes a commit would record right now. Any partial
	// minute of effort counts as a full minute.
	LoggedMin int

	// Ratio is LoggedMin/target clamped to [0, 2]. The extra headroom above
	// 1 lets callers phrase overtime messages; bar renderers clamp to
	// [0, 1] themselves. Only meaningful when HasTarget is true.
	Ratio float64

	// HasTarget is false when no positive target was supplied, in which
	// case Ratio is undefined and display degrades to "logged so far".
	HasTarget bool

	// Overtime is true when LoggedMin exceeds the target.
	Overtime bool
}

// LoggedMinutes converts an elapsed duration to committed minutes:
// zero stays zero, anything else rounds up to the next whole minute.
func LoggedMinutes(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	secs := int(elapsed / time.Second)
	if elapsed%time.Second > 0 {
		secs++
	}
	return (secs + 59) / 60
}

// Calculate derives the full progress state for an elapsed duration against
// a target in minutes. targetMin <= 0 means no target.
func Calculate(elapsed time.Duration, targetMin int) Progress {
	p := Progress{LoggedMin: LoggedMinutes(elapsed)}
	if targetMin <= 0 {
		return p
	}
	p.HasTarget = true
	p.Overtime = p.LoggedMin > targetMin

	ratio := float64(p.LoggedMin) / float64(targetMin)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 2 {
		ratio = 2
	}
	p.Ratio = ratio
	return p
}

// FormatClock renders an elapsed duration as MM:SS, switching to HH:MM:SS
// once the duration reaches one hour.
func FormatClock(elapsed time.Duration) string {
	total := int(elapsed / time.Second)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
