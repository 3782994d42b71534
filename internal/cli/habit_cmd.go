package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/spf13/cobra"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(app),
		newHabitListCmd(app),
		newHabitSetCmd(app),
		newHabitPauseCmd(app),
		newHabitResumeCmd(app),
		newHabitArchiveCmd(app),
	)

	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var color, unit string
	var targetMin int
	var pointsHr int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a new habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := &domain.Habit{
				Title:         args[0],
				Color:         color,
				TargetMin:     targetMin,
				Unit:          domain.TimeUnit(unit),
				PointsPerHour: pointsHr,
			}
			if err := app.Habits.Create(context.Background(), h); err != nil {
				return err
			}
			fmt.Printf("Added habit %q (%s)\n", h.Title, formatter.TruncID(h.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Accent color as #rrggbb")
	cmd.Flags().IntVar(&targetMin, "target", 0, "Daily target in minutes (0 for none)")
	cmd.Flags().StringVar(&unit, "unit", "minutes", "Display unit: minutes or hours")
	cmd.Flags().IntVar(&pointsHr, "points", app.DefaultPointsHr, "Points earned per hour")

	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(habits) == 0 {
				fmt.Println("No habits found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "TARGET", "STATUS", "TOTAL"}
			rows := make([][]string, 0, len(habits))
			for _, h := range habits {
				target := formatter.Dim("none")
				if h.HasTarget() {
					target = formatter.FormatMinutes(h.TargetMin) + "/day"
				}
				rows = append(rows, []string{
					formatter.TruncID(h.ID),
					formatter.Accent(h.Color).Render(h.Title),
					target,
					formatter.StatusPill(h.Status),
					formatter.FormatInUnit(h.LoggedTotalMin, h.Unit),
				})
			}

			fmt.Print(formatter.RenderBox("Habits", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived habits")

	return cmd
}

func newHabitSetCmd(app *App) *cobra.Command {
	var color, unit, title string
	var targetMin int
	var pointsHr int

	cmd := &cobra.Command{
		Use:   "set ID",
		Short: "Update a habit's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				h.Title = title
			}
			if cmd.Flags().Changed("color") {
				h.Color = color
			}
			if cmd.Flags().Changed("target") {
				h.TargetMin = targetMin
			}
			if cmd.Flags().Changed("unit") {
				h.Unit = domain.TimeUnit(unit)
			}
			if cmd.Flags().Changed("points") {
				h.PointsPerHour = pointsHr
			}

			if err := app.Habits.Update(ctx, h); err != nil {
				return err
			}
			fmt.Printf("Updated habit %q\n", h.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&color, "color", "", "Accent color as #rrggbb")
	cmd.Flags().IntVar(&targetMin, "target", 0, "Daily target in minutes (0 for none)")
	cmd.Flags().StringVar(&unit, "unit", "", "Display unit: minutes or hours")
	cmd.Flags().IntVar(&pointsHr, "points", 0, "Points earned per hour")

	return cmd
}

func newHabitPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause ID",
		Short: "Pause a habit without losing its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Pause(ctx, h.ID); err != nil {
				return err
			}
			fmt.Printf("Paused habit %q\n", h.Title)
			return nil
		},
	}
}

func newHabitResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume ID",
		Short: "Resume a paused habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Resume(ctx, h.ID); err != nil {
				return err
			}
			fmt.Printf("Resumed habit %q\n", h.Title)
			return nil
		},
	}
}

func newHabitArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Habits.Archive(ctx, h.ID); err != nil {
				return err
			}
			fmt.Printf("Archived habit %q\n", h.Title)
			return nil
		},
	}
}

// resolveHabit accepts either a full habit ID, an unambiguous ID prefix,
// or an exact title match.
func resolveHabit(ctx context.Context, app *App, ref string) (*domain.Habit, error) {
	if h, err := app.Habits.GetByID(ctx, ref); err == nil {
		return h, nil
	}

	habits, err := app.Habits.List(ctx, true)
	if err != nil {
		return nil, err
	}

	var byPrefix []*domain.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Title, ref) {
			return h, nil
		}
		if strings.HasPrefix(h.ID, ref) {
			byPrefix = append(byPrefix, h)
		}
	}

	switch len(byPrefix) {
	case 1:
		return byPrefix[0], nil
	case 0:
		return nil, fmt.Errorf("no habit matches %q", ref)
	default:
		return nil, fmt.Errorf("habit reference %q is ambiguous (%d matches)", ref, len(byPrefix))
	}
}
