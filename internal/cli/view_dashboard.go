package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardLoadedMsg signals that habit stats have been loaded.
type dashboardLoadedMsg struct {
	stats []service.HabitStats
	err   error
}

// quickLoggedMsg reports a successful quick log so shared state is updated
// on the update loop rather than inside the commit goroutine.
type quickLoggedMsg struct {
	minutes int
	output  string
}

// dashboardView is the home screen: every active habit with today's
// progress against its target. Enter opens the timer for the selected habit.
type dashboardView struct {
	state   *SharedState
	stats   []service.HabitStats
	cursor  int
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Habits" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "timer")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log minutes")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add habit")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "archive")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadStats()
}

func (v *dashboardView) loadStats() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		stats, err := app.Stats.Overview(context.Background(), false)
		return dashboardLoadedMsg{stats: stats, err: err}
	}
}

func (v *dashboardView) selected() *service.HabitStats {
	if v.cursor < 0 || v.cursor >= len(v.stats) {
		return nil
	}
	return &v.stats[v.cursor]
}

// markSelected tracks the habit under the cursor as the active habit.
func (v *dashboardView) markSelected() {
	if sel := v.selected(); sel != nil {
		v.state.SetActiveHabit(sel.Habit)
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.stats = msg.stats
		v.restoreCursor()
		return v, nil

	case quickLoggedMsg:
		v.state.LastDuration = msg.minutes
		output := msg.output
		return v, func() tea.Msg { return formSuccessOutput(output) }

	case refreshViewMsg:
		v.loading = true
		return v, v.loadStats()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

// restoreCursor re-selects the active habit after a reload. Logging,
// editing or archiving can reorder or shrink the list, so position alone
// is not a stable selection.
func (v *dashboardView) restoreCursor() {
	if id := v.state.ActiveHabitID; id != "" {
		for i := range v.stats {
			if v.stats[i].Habit.ID == id {
				v.cursor = i
				return
			}
		}
		// The active habit is gone (archived); drop the stale context.
		v.state.ClearActiveHabit()
	}
	if v.cursor >= len(v.stats) {
		v.cursor = max(len(v.stats)-1, 0)
	}
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "up" || msg.String() == "k":
		if v.cursor > 0 {
			v.cursor--
		}
		v.markSelected()
		return v, nil

	case msg.String() == "down" || msg.String() == "j":
		if v.cursor < len(v.stats)-1 {
			v.cursor++
		}
		v.markSelected()
		return v, nil

	case msg.Type == tea.KeyEnter:
		sel := v.selected()
		if sel == nil {
			return v, nil
		}
		v.state.SetActiveHabit(sel.Habit)
		return v, pushView(newTimerView(v.state, sel.Habit))

	case msg.String() == "l":
		sel := v.selected()
		if sel == nil {
			return v, nil
		}
		return v, v.quickLogCmd(sel.Habit)

	case msg.String() == "a":
		return v, v.addHabitCmd()

	case msg.String() == "e":
		sel := v.selected()
		if sel == nil {
			return v, nil
		}
		return v, v.editHabitCmd(sel.Habit)

	case msg.String() == "h":
		sel := v.selected()
		if sel == nil {
			return v, nil
		}
		v.state.SetActiveHabit(sel.Habit)
		return v, pushView(newHistoryView(v.state, sel.Habit))

	case msg.String() == "x":
		sel := v.selected()
		if sel == nil {
			return v, nil
		}
		if v.state.ActiveHabitID == sel.Habit.ID {
			v.state.ClearActiveHabit()
		}
		return v, v.archiveHabitCmd(sel.Habit)

	case msg.String() == "r":
		v.loading = true
		return v, v.loadStats()
	}

	return v, nil
}

// quickLogCmd opens manual entry directly, skipping the stopwatch. The done
// closure only reads; shared state is updated when quickLoggedMsg comes back
// through Update.
func (v *dashboardView) quickLogCmd(habit *domain.Habit) tea.Cmd {
	state := v.state
	app := state.App

	defaultMin := state.LastDuration
	if defaultMin <= 0 {
		defaultMin = habit.TargetMin
	}
	if defaultMin <= 0 {
		defaultMin = app.fallbackTargetMin()
	}
	value := fmt.Sprintf("%d", defaultMin)

	form := manualEntryForm(habit, &value)

	done := func() tea.Cmd {
		return func() tea.Msg {
			minutes := parsePositiveInt(value, 0)
			if minutes <= 0 {
				return formErrorOutput(fmt.Errorf("enter a positive duration"))
			}
			log, err := app.Logs.LogSession(context.Background(), service.LogInput{
				HabitID: habit.ID,
				Minutes: minutes,
				Source:  domain.SourceManual,
			})
			if err != nil {
				return formErrorOutput(err)
			}
			return quickLoggedMsg{
				minutes: log.Minutes,
				output: fmt.Sprintf("%s Logged %s for %s",
					formatter.StyleGreen.Render("✔"),
					formatter.Bold(formatter.FormatMinutes(log.Minutes)),
					formatter.Accent(habit.Color).Render(habit.Title)),
			}
		}
	}

	return pushView(newWizardView(state, "Log Minutes", form, done))
}

func (v *dashboardView) addHabitCmd() tea.Cmd {
	state := v.state
	f := &habitFields{unit: "minutes", pointsHr: fmt.Sprintf("%d", state.App.fallbackPointsHr())}
	form := habitForm(f, "")

	done := func() tea.Cmd {
		return func() tea.Msg {
			h := &domain.Habit{
				Title:         f.title,
				Color:         f.color,
				TargetMin:     parsePositiveInt(f.targetMin, 0),
				Unit:          domain.TimeUnit(f.unit),
				PointsPerHour: parsePositiveInt(f.pointsHr, 0),
			}
			if err := state.App.Habits.Create(context.Background(), h); err != nil {
				return formErrorOutput(err)
			}
			return formSuccessOutput(fmt.Sprintf("%s Added habit: %s",
				formatter.StyleGreen.Render("✔"), formatter.Bold(h.Title)))
		}
	}

	return pushView(newWizardView(state, "Add Habit", form, done))
}

func (v *dashboardView) editHabitCmd(habit *domain.Habit) tea.Cmd {
	state := v.state
	f := &habitFields{
		title:    habit.Title,
		color:    habit.Color,
		unit:     string(habit.Unit),
		pointsHr: fmt.Sprintf("%d", habit.PointsPerHour),
	}
	if habit.TargetMin > 0 {
		f.targetMin = fmt.Sprintf("%d", habit.TargetMin)
	}
	form := habitForm(f, habit.Color)

	done := func() tea.Cmd {
		return func() tea.Msg {
			ctx := context.Background()
			current, err := state.App.Habits.GetByID(ctx, habit.ID)
			if err != nil {
				return formErrorOutput(err)
			}
			current.Title = f.title
			current.Color = f.color
			current.TargetMin = parsePositiveInt(f.targetMin, 0)
			current.Unit = domain.TimeUnit(f.unit)
			current.PointsPerHour = parsePositiveInt(f.pointsHr, 0)
			if err := state.App.Habits.Update(ctx, current); err != nil {
				return formErrorOutput(err)
			}
			return formSuccessOutput(fmt.Sprintf("%s Updated: %s",
				formatter.StyleGreen.Render("✔"), formatter.Bold(current.Title)))
		}
	}

	return pushView(newWizardView(state, "Edit Habit", form, done))
}

func (v *dashboardView) archiveHabitCmd(habit *domain.Habit) tea.Cmd {
	state := v.state
	return func() tea.Msg {
		if err := state.App.Habits.Archive(context.Background(), habit.ID); err != nil {
			return formErrorOutput(err)
		}
		return formSuccessOutput(fmt.Sprintf("%s Archived: %s",
			formatter.StyleGreen.Render("✔"), formatter.Bold(habit.Title)))
	}
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading habits…")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.stats) == 0 {
		return "\n  " + formatter.Dim("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, s := range v.stats {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
		}

		title := formatter.Accent(s.Habit.Color).Render(s.Habit.Title)
		if i == v.cursor {
			title = formatter.Accent(s.Habit.Color).Bold(true).Render(s.Habit.Title)
		}

		var progress string
		if s.Habit.HasTarget() {
			ratio := float64(s.TodayMin) / float64(s.Habit.TargetMin)
			progress = formatter.RenderProgress(ratio, 16) +
				formatter.Dim(fmt.Sprintf("  %s / %s today",
					formatter.FormatMinutes(s.TodayMin),
					formatter.FormatInUnit(s.Habit.TargetMin, s.Habit.Unit)))
		} else {
			progress = formatter.Dim(fmt.Sprintf("%s today · %s this week",
				formatter.FormatMinutes(s.TodayMin), formatter.FormatMinutes(s.WeekMin)))
		}

		points := ""
		if s.TodayPoints > 0 {
			points = formatter.StylePurple.Render(fmt.Sprintf("  %d pts", s.TodayPoints))
		}

		b.WriteString(fmt.Sprintf("%s%s%s\n    %s\n\n", cursor, title, points, progress))
	}

	return b.String()
}
