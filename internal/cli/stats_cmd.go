package cli

import (
	"context"
	"fmt"

	"github.com/evanhagen/habitual/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's and this week's totals per habit",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := app.Stats.Overview(context.Background(), all)
			if err != nil {
				return err
			}

			if len(overview) == 0 {
				fmt.Println("No habits found.")
				return nil
			}

			headers := []string{"HABIT", "TODAY", "WEEK", "TARGET", "PTS"}
			rows := make([][]string, 0, len(overview))
			for _, s := range overview {
				h := s.Habit
				target := formatter.Dim("none")
				if h.HasTarget() {
					pct := float64(s.TodayMin) / float64(h.TargetMin)
					target = formatter.RenderProgress(pct, 10)
				}
				rows = append(rows, []string{
					formatter.Accent(h.Color).Render(h.Title),
					formatter.FormatMinutes(s.TodayMin),
					formatter.FormatMinutes(s.WeekMin),
					target,
					fmt.Sprintf("%d", s.TodayPoints),
				})
			}

			fmt.Print(formatter.RenderBox("Stats", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived habits")

	return cmd
}
