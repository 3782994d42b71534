package domain

type Status string

const (
	HabitActive   Status = "active"
	HabitPaused   Status = "paused"
	HabitArchived Status = "archived"
)

type TimeUnit string

const (
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
)

// ValidTimeUnits is the canonical set of accepted display unit strings.
var ValidTimeUnits = map[string]bool{
	"minutes": true, "hours": true,
}

type LogSource string

const (
	SourceTimer  LogSource = "timer"
	SourceManual LogSource = "manual"
)
