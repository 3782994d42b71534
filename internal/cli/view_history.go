package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// historyLimit caps how many recent logs the history view loads.
const historyLimit = 100

// historyLoadedMsg signals that a habit's recent logs have been loaded.
type historyLoadedMsg struct {
	logs []*domain.HabitLog
	err  error
}

// historyView lists a habit's recent sessions, newest first, in a
// scrollable viewport.
type historyView struct {
	state   *SharedState
	habit   *domain.Habit
	vp      viewport.Model
	loading bool
	err     error
	ready   bool
}

func newHistoryView(state *SharedState, habit *domain.Habit) *historyView {
	return &historyView{
		state:   state,
		habit:   habit,
		loading: true,
	}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *historyView) Init() tea.Cmd {
	return v.loadLogs()
}

func (v *historyView) loadLogs() tea.Cmd {
	app := v.state.App
	habitID := v.habit.ID
	return func() tea.Msg {
		logs, err := app.Logs.ListByHabit(context.Background(), habitID, historyLimit)
		return historyLoadedMsg{logs: logs, err: err}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case historyLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.ensureViewport()
		v.vp.SetContent(renderLogLines(v.habit, msg.logs))
		v.vp.GotoTop()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadLogs()

	case tea.WindowSizeMsg:
		v.ensureViewport()
		v.vp.Width = v.state.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadLogs()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *historyView) ensureViewport() {
	if v.ready {
		return
	}
	v.vp = viewport.New(max(v.state.Width, 20), v.state.ContentHeight())
	v.ready = true
}

func renderLogLines(habit *domain.Habit, logs []*domain.HabitLog) string {
	if len(logs) == 0 {
		return "\n  " + formatter.Dim("No sessions logged yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range logs {
		src := formatter.Dim("timer")
		if l.Source == domain.SourceManual {
			src = formatter.Dim("manual")
		}
		line := fmt.Sprintf("  %s  %s  %s  %s",
			formatter.Dim(formatter.HumanDate(l.StartedAt)),
			formatter.Bold(formatter.FormatMinutes(l.Minutes)),
			src,
			formatter.Dim(l.Note))
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	total := 0
	for _, l := range logs {
		total += l.Minutes
	}
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d sessions · %s total",
		len(logs), formatter.FormatMinutes(total))))

	return b.String()
}

func (v *historyView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading history…")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return v.vp.View()
}
