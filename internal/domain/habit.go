package domain

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Habit struct {
	ID    string
	Title string

	// Color is the hex accent color used for the habit everywhere it is
	// rendered (list rows, timer header, manual entry form).
	Color string

	// TargetMin is the daily goal in minutes. Zero means the habit has no
	// target and progress degrades to a plain "logged so far" display.
	TargetMin int

	// Unit is the preferred display unit for durations of this habit.
	Unit TimeUnit

	// PointsPerHour drives the reward preview shown while logging.
	PointsPerHour int

	Status Status

	// Rolling totals, updated transactionally when a session is logged.
	LoggedTotalMin int
	LastLoggedAt   *time.Time

	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the fields a habit needs before it can be persisted.
func (h *Habit) Validate() error {
	if h.Title == "" {
		return fmt.Errorf("habit title is required")
	}
	if h.Color != "" && !hexColorPattern.MatchString(h.Color) {
		return fmt.Errorf("color %q must be a hex value like #8ec07c", h.Color)
	}
	if h.TargetMin < 0 {
		return fmt.Errorf("target minutes must not be negative")
	}
	if !ValidTimeUnits[string(h.Unit)] {
		return fmt.Errorf("unit %q must be one of minutes, hours", h.Unit)
	}
	return nil
}

// HasTarget reports whether the habit carries a usable daily target.
func (h *Habit) HasTarget() bool {
	return h.TargetMin > 0
}

// PointsFor maps logged minutes to reward points. This is a preview of what
// a commit would award; the authoritative value is computed at log time from
// the same formula.
func (h *Habit) PointsFor(minutes int) int {
	if minutes <= 0 || h.PointsPerHour <= 0 {
		return 0
	}
	return int(math.Round(float64(minutes) * float64(h.PointsPerHour) / 60))
}

// ApplyLog rolls a committed session into the habit's running totals.
func (h *Habit) ApplyLog(minutes int, at time.Time) error {
	if minutes <= 0 {
		return fmt.Errorf("logged minutes must be positive")
	}
	h.LoggedTotalMin += minutes
	h.LastLoggedAt = &at
	h.UpdatedAt = at
	return nil
}
