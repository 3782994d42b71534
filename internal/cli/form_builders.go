package cli

import (
	"fmt"
	"strconv"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/charmbracelet/huh"
)

// manualEntryForm builds the numeric duration entry form. It carries the
// habit's title, target, preferred unit and accent color, and previews the
// points a given duration would award via habit.PointsFor. The bound value
// is a string because huh inputs are text; callers convert after completion.
func manualEntryForm(habit *domain.Habit, value *string) *huh.Form {
	desc := "How long did you spend?"
	if habit.HasTarget() {
		desc = fmt.Sprintf("Daily target: %s", formatter.FormatInUnit(habit.TargetMin, habit.Unit))
	}

	input := huh.NewInput().
		Title(fmt.Sprintf("%s — duration (minutes)", habit.Title)).
		Description(desc).
		Placeholder("30").
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("enter a duration")
			}
			return validatePositiveInt(s)
		})

	if habit.PointsPerHour > 0 {
		input = input.DescriptionFunc(func() string {
			min, err := strconv.Atoi(*value)
			if err != nil || min <= 0 {
				return desc
			}
			return fmt.Sprintf("%s  ·  worth %d pts", desc, habit.PointsFor(min))
		}, value)
	}

	return huh.NewForm(
		huh.NewGroup(input),
	).WithTheme(habitualHuhTheme(habit.Color)).WithShowHelp(false)
}

// habitFields holds form-bound values for the add/edit habit wizards.
type habitFields struct {
	title     string
	color     string
	targetMin string
	unit      string
	pointsHr  string
}

// habitForm builds the shared add/edit habit form over the given fields.
func habitForm(f *habitFields, accent string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Reading").
				Value(&f.title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Accent Color (hex, blank for default)").
				Placeholder("#8ec07c").
				Value(&f.color),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Daily Target Minutes (blank for none)").
				Placeholder("30").
				Value(&f.targetMin).
				Validate(validateNonNegativeInt),
			huh.NewSelect[string]().
				Title("Preferred Unit").
				Options(
					huh.NewOption("Minutes", "minutes"),
					huh.NewOption("Hours", "hours"),
				).
				Value(&f.unit),
			huh.NewInput().
				Title("Points Per Hour").
				Placeholder("60").
				Value(&f.pointsHr).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(habitualHuhTheme(accent)).WithShowHelp(false)
}
