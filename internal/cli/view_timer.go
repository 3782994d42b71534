package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/service"
	"github.com/evanhagen/habitual/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickInterval is how often the timer view asks for a redraw while
// the stopwatch runs, unless tick_interval is configured. It only paces
// display refresh; elapsed time comes from the session's clock, so late or
// dropped ticks never skew the result.
const defaultTickInterval = 250 * time.Millisecond

// timerTickMsg requests a redraw of a running timer. gen guards against
// stale ticks arriving after a stop, reset, or view teardown.
type timerTickMsg struct {
	gen int
}

// timerCommittedMsg reports the outcome of committing minutes against the
// habit, from either the save action or the manual entry form.
type timerCommittedMsg struct {
	minutes int
	output  string
	err     error
}

// timerView is the timer modal for one habit: a stopwatch measured against
// the habit's daily target, committed as logged minutes on save, with
// manual numeric entry as the alternate path.
type timerView struct {
	state *SharedState
	habit *domain.Habit
	sess  *timer.Session

	// gen is bumped whenever the tick chain must be invalidated.
	gen int

	// flash is a one-shot cue line confirming the last action.
	flash string
}

func newTimerView(state *SharedState, habit *domain.Habit) *timerView {
	return &timerView{
		state: state,
		habit: habit,
		sess:  timer.NewSession(),
	}
}

func (v *timerView) ID() ViewID    { return ViewTimer }
func (v *timerView) Title() string { return v.habit.Title }

func (v *timerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "start/stop")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save progress")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "manual entry")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *timerView) Init() tea.Cmd {
	return nil
}

// tick schedules the next redraw for the current generation.
func (v *timerView) tick() tea.Cmd {
	gen := v.gen
	return tea.Tick(v.state.App.tickEvery(), func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case timerTickMsg:
		// Drop ticks from a previous generation; do not reschedule them.
		if msg.gen != v.gen || !v.sess.Running() {
			return v, nil
		}
		return v, v.tick()

	case refreshViewMsg:
		// Coming back to the foreground (e.g. manual entry cancelled):
		// the old tick chain died while a view sat above us, restart it.
		if v.sess.Running() {
			v.gen++
			return v, v.tick()
		}
		return v, nil

	case timerCommittedMsg:
		if msg.err != nil {
			return v, func() tea.Msg { return formErrorOutput(msg.err) }
		}
		// The committed value wins over whatever the stopwatch shows.
		// Session and generation are only touched here, on the update
		// loop, never from the commit goroutine.
		if v.sess.Running() {
			v.sess.Toggle()
		}
		v.gen++
		v.state.LastDuration = msg.minutes
		output := msg.output
		return v, tea.Batch(popView(), func() tea.Msg {
			return formSuccessOutput(output)
		})

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *timerView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		// Cancel: discard the session, invalidate outstanding ticks.
		v.gen++
		return v, popView()

	case msg.Type == tea.KeySpace || msg.String() == " ":
		v.sess.Toggle()
		if v.sess.Running() {
			v.flash = formatter.StyleGreen.Render("▶ running")
			return v, v.tick()
		}
		v.gen++
		v.flash = formatter.StyleYellow.Render("⏸ paused")
		return v, nil

	case msg.String() == "r":
		// Reset is a no-op while nothing has been accumulated.
		if v.sess.Elapsed() <= 0 {
			return v, nil
		}
		v.gen++
		v.sess.Reset()
		v.flash = formatter.Dim("↺ reset")
		if v.sess.Running() {
			return v, v.tick()
		}
		return v, nil

	case msg.String() == "s":
		minutes := timer.LoggedMinutes(v.sess.Elapsed())
		if minutes <= 0 {
			return v, nil
		}
		if v.sess.Running() {
			v.sess.Toggle()
			v.gen++
		}
		return v, v.commitCmd(minutes, domain.SourceTimer)

	case msg.String() == "m":
		return v, v.manualEntryCmd()
	}

	return v, nil
}

// commitCmd persists the minutes against the habit and reports the outcome.
// The closure runs on a tea.Cmd goroutine, so it only reads the habit and
// services; timerView and SharedState mutation happens in Update when the
// timerCommittedMsg arrives.
func (v *timerView) commitCmd(minutes int, source domain.LogSource) tea.Cmd {
	app := v.state.App
	habit := v.habit
	return func() tea.Msg {
		log, err := app.Logs.LogSession(context.Background(), service.LogInput{
			HabitID: habit.ID,
			Minutes: minutes,
			Source:  source,
		})
		if err != nil {
			return timerCommittedMsg{err: err}
		}

		line := fmt.Sprintf("%s Logged %s for %s",
			formatter.StyleGreen.Render("✔"),
			formatter.Bold(formatter.FormatMinutes(log.Minutes)),
			formatter.Accent(habit.Color).Render(habit.Title))
		if pts := habit.PointsFor(log.Minutes); pts > 0 {
			line += formatter.Dim(fmt.Sprintf("  (+%d pts)", pts))
		}
		return timerCommittedMsg{minutes: log.Minutes, output: line}
	}
}

// manualEntryCmd pushes the numeric entry form. A committed value replaces
// whatever the stopwatch shows; cancelling leaves the timer untouched.
func (v *timerView) manualEntryCmd() tea.Cmd {
	habit := v.habit

	defaultMin := v.state.LastDuration
	if defaultMin <= 0 {
		defaultMin = habit.TargetMin
	}
	if defaultMin <= 0 {
		defaultMin = v.state.App.fallbackTargetMin()
	}
	value := strconv.Itoa(defaultMin)

	form := manualEntryForm(habit, &value)

	done := func() tea.Cmd {
		return func() tea.Msg {
			minutes := parsePositiveInt(value, 0)
			if minutes <= 0 {
				return formErrorOutput(fmt.Errorf("enter a positive duration"))
			}
			return v.commitCmd(minutes, domain.SourceManual)()
		}
	}

	return pushView(newWizardView(v.state, "Manual Entry", form, done))
}

func (v *timerView) View() string {
	elapsed := v.sess.Elapsed()
	p := timer.Calculate(elapsed, v.habit.TargetMin)

	clock := formatter.StyleBold.Render(timer.FormatClock(elapsed))

	stateLine := formatter.Dim("⏸ stopped — space to start")
	if v.sess.Running() {
		stateLine = formatter.StyleGreen.Render("▶ running")
	}
	if v.flash != "" {
		stateLine = v.flash
	}

	var progressLine string
	switch {
	case !p.HasTarget:
		progressLine = formatter.Dim(fmt.Sprintf("Logged so far: %s", formatter.FormatMinutes(p.LoggedMin)))
	case p.Overtime:
		over := p.LoggedMin - v.habit.TargetMin
		progressLine = formatter.RenderProgress(p.Ratio, 24) + "\n" +
			formatter.StyleYellow.Render(fmt.Sprintf("Overtime! %s past your %s target",
				formatter.FormatMinutes(over), formatter.FormatInUnit(v.habit.TargetMin, v.habit.Unit)))
	default:
		progressLine = formatter.RenderProgress(p.Ratio, 24) + "\n" +
			formatter.Dim(fmt.Sprintf("%s of %s",
				formatter.FormatMinutes(p.LoggedMin), formatter.FormatInUnit(v.habit.TargetMin, v.habit.Unit)))
	}

	var pointsLine string
	if pts := v.habit.PointsFor(p.LoggedMin); pts > 0 {
		pointsLine = "\n" + formatter.Dim(fmt.Sprintf("worth %d pts", pts))
	}

	content := fmt.Sprintf("%s\n%s\n\n%s%s", clock, stateLine, progressLine, pointsLine)
	return formatter.RenderBox(v.habit.Title, content)
}
