package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/evanhagen/habitual/internal/domain"
	"github.com/evanhagen/habitual/internal/service"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage logged sessions",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogRecentCmd(app),
		newLogRemoveCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var note string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add HABIT",
		Short: "Log minutes against a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}

			l, err := app.Logs.LogSession(ctx, service.LogInput{
				HabitID:   h.ID,
				Minutes:   minutes,
				Source:    domain.SourceManual,
				StartedAt: time.Now(),
				Note:      note,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged %s for %q (%s)\n",
				formatter.FormatMinutes(l.Minutes), h.Title, formatter.TruncID(l.ID))
			if pts := h.PointsFor(l.Minutes); pts > 0 {
				fmt.Printf("Earned %d pts\n", pts)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session duration in minutes")
	cmd.Flags().StringVar(&note, "note", "", "Session note")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list HABIT",
		Short: "List logged sessions for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, app, args[0])
			if err != nil {
				return err
			}

			logs, err := app.Logs.ListByHabit(ctx, h.ID, limit)
			if err != nil {
				return err
			}

			if len(logs) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			headers := []string{"ID", "STARTED", "DURATION", "SOURCE", "NOTE"}
			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				notePreview := l.Note
				if len(notePreview) > 40 {
					notePreview = notePreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(l.ID),
					formatter.HumanTimestamp(l.StartedAt),
					formatter.FormatMinutes(l.Minutes),
					string(l.Source),
					formatter.Dim(notePreview),
				})
			}

			fmt.Print(formatter.RenderBox(h.Title, formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show")

	return cmd
}

func newLogRecentCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent sessions across all habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			since := time.Now().AddDate(0, 0, -days)

			logs, err := app.Logs.Recent(ctx, since)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println("No sessions in this window.")
				return nil
			}

			habits, err := app.Habits.List(ctx, true)
			if err != nil {
				return err
			}
			titleByID := make(map[string]string, len(habits))
			for _, h := range habits {
				titleByID[h.ID] = formatter.Accent(h.Color).Render(h.Title)
			}

			total := 0
			headers := []string{"STARTED", "HABIT", "DURATION", "SOURCE"}
			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				total += l.Minutes
				rows = append(rows, []string{
					formatter.HumanTimestamp(l.StartedAt),
					titleByID[l.HabitID],
					formatter.FormatMinutes(l.Minutes),
					string(l.Source),
				})
			}

			fmt.Println(formatter.Header(fmt.Sprintf("Last %d days", days)))
			fmt.Println(formatter.RenderTable(headers, rows))
			fmt.Println(formatter.Dim(fmt.Sprintf("%d sessions · %s total",
				len(logs), formatter.FormatMinutes(total))))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to include")

	return cmd
}

func newLogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a logged session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Logs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed log %s\n", args[0])
			return nil
		},
	}
}
