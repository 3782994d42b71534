package formatter

import (
	"testing"
	"time"

	"github.com/evanhagen/habitual/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min))
	}
}

func TestFormatInUnit(t *testing.T) {
	assert.Equal(t, "45m", FormatInUnit(45, domain.UnitMinutes))
	assert.Equal(t, "0.8h", FormatInUnit(45, domain.UnitHours))
	assert.Equal(t, "1.5h", FormatInUnit(90, domain.UnitHours))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("12345678-abcd-efgh"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestHumanDate(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Today", HumanDate(now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1)))

	old := time.Date(2025, 3, 9, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "Mar 9, 2025", HumanDate(old))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Timer", "content line")
	assert.Contains(t, out, "TIMER")
	assert.Contains(t, out, "content line")
	// Rounded border frame.
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestStatusPill(t *testing.T) {
	assert.Contains(t, StatusPill(domain.HabitActive), "Active")
	assert.Contains(t, StatusPill(domain.HabitPaused), "Paused")
	assert.Contains(t, StatusPill(domain.HabitArchived), "Archived")
	assert.Contains(t, StatusPill(domain.Status("weird")), "weird")
}

func TestHeader(t *testing.T) {
	out := Header("Last 7 days")
	assert.Contains(t, out, "LAST 7 DAYS")
	assert.Contains(t, out, "─")
}
