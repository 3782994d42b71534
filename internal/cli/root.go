package cli

import (
	"time"

	"github.com/evanhagen/habitual/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands
// and the interactive TUI.
type App struct {
	Habits service.HabitService
	Logs   service.LogService
	Stats  service.StatsService

	// IsInteractive reports whether stdout is a terminal. When nil the
	// TUI is never launched implicitly.
	IsInteractive func() bool

	// TickInterval paces the timer view's redraws. Zero means the
	// built-in default.
	TickInterval time.Duration

	// DefaultTargetMin pre-fills manual entry when neither a previous
	// duration nor a habit target is available.
	DefaultTargetMin int

	// DefaultPointsHr seeds the points-per-hour of new habits.
	DefaultPointsHr int
}

// tickEvery returns the configured redraw cadence for the timer view.
func (a *App) tickEvery() time.Duration {
	if a.TickInterval > 0 {
		return a.TickInterval
	}
	return defaultTickInterval
}

// fallbackTargetMin returns the duration manual entry pre-fills when the
// habit itself offers nothing.
func (a *App) fallbackTargetMin() int {
	if a.DefaultTargetMin > 0 {
		return a.DefaultTargetMin
	}
	return 30
}

// fallbackPointsHr returns the points-per-hour new habits start with.
func (a *App) fallbackPointsHr() int {
	if a.DefaultPointsHr > 0 {
		return a.DefaultPointsHr
	}
	return 60
}

// NewRootCmd creates the top-level "habitual" command and registers all
// subcommands against the provided App. Running with no subcommand in a
// terminal opens the interactive dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "habitual",
		Short: "Habit tracker with a built-in session timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newHabitCmd(app),
		newLogCmd(app),
		newStatsCmd(app),
		newTUICmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTUI(app)
		},
	}
}

// RunTUI starts the full-screen interactive program.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
