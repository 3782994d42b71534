package cli

import "github.com/evanhagen/habitual/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active habit context, set when a habit view is opened.
	ActiveHabitID    string
	ActiveHabitTitle string

	// LastDuration pre-fills the manual entry form with the duration the
	// user most recently committed this session.
	LastDuration int

	// Terminal dimensions
	Width  int
	Height int
}

// SetActiveHabit sets the active habit context from a loaded habit.
func (s *SharedState) SetActiveHabit(h *domain.Habit) {
	s.ActiveHabitID = h.ID
	s.ActiveHabitTitle = h.Title
}

// ClearActiveHabit resets the active habit context.
func (s *SharedState) ClearActiveHabit() {
	s.ActiveHabitID = ""
	s.ActiveHabitTitle = ""
}

// ContentHeight returns the available height for view content, accounting
// for the header (2 lines: title + separator) and the status bar
// (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
