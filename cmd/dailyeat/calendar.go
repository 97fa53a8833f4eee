package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"dailyeat/internal/calendar"
	"dailyeat/internal/cli"
	"dailyeat/internal/core"
	"dailyeat/internal/history"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month calendar with statistics",
	Long: `Prints the month grid (Monday first) and the month statistics.
Days that reached the target are marked '+', logged days below it '-'.

Example:

  dailyeat calendar --month 2024-02 --target 1800`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		monthFlag, _ := cmd.Flags().GetString("month")
		target, _ := cmd.Flags().GetInt("target")
		asJSON, _ := cmd.Flags().GetBool("json")

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			m := core.MonthOf(app.Tracker.Now())
			if monthFlag != "" {
				parsed, err := core.ParseMonth(monthFlag)
				if err != nil {
					return fmt.Errorf("invalid --month %q: expected YYYY-MM", monthFlag)
				}
				m = parsed
			}
			if target <= 0 {
				target = app.Tracker.Target()
			}

			view, err := app.History.Month(ctx, m, target)
			if err != nil {
				return fmt.Errorf("failed to load month: %w", err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			renderMonth(cmd.OutOrStdout(), view)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show [dd/MM/yyyy]",
	Short: "Show the stored record of a day",
	Long:  `Shows the foods and total stored for a date. Without an argument, today is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetInt("target")
		asJSON, _ := cmd.Flags().GetBool("json")

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			date := app.Tracker.Today()
			if len(args) == 1 {
				date = args[0]
			}
			if target <= 0 {
				target = app.Tracker.Target()
			}
			view, err := app.History.Day(ctx, date, target)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			renderDay(cmd.OutOrStdout(), view)
			return nil
		})
	},
}

func init() {
	calendarCmd.Flags().String("month", "", "Month as YYYY-MM (defaults to the current month)")
	calendarCmd.Flags().Int("target", 0, "Calorie target for hit/miss (defaults to TARGET_CALORIES)")
	calendarCmd.Flags().Bool("json", false, "Print the month view as JSON")

	showCmd.Flags().Int("target", 0, "Calorie target for hit/miss (defaults to TARGET_CALORIES)")
	showCmd.Flags().Bool("json", false, "Print the day view as JSON")
}

var weekdayHeader = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func renderMonth(w io.Writer, view history.MonthView) {
	fmt.Fprintln(w, view.Grid.Month.Title())
	fmt.Fprintln(w, " "+strings.Join(weekdayHeader, "  "))
	for _, week := range view.Grid.Weeks() {
		var b strings.Builder
		for _, c := range week {
			b.WriteString(formatCell(c))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	s := view.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Target:   %d kcal\n", s.Target)
	fmt.Fprintf(w, "Logged:   %d days\n", s.LoggedDays)
	fmt.Fprintf(w, "Average:  %d kcal\n", s.Average)
	fmt.Fprintf(w, "Success:  %d/%d days (%d%%)\n", s.SuccessDays, s.DaysInMonth, s.SuccessRate)
}

// formatCell renders a five-column cell: day number, status mark and a today
// marker.
func formatCell(c calendar.Cell) string {
	if c.Blank() {
		return "     "
	}
	mark := " "
	switch c.Status {
	case calendar.StatusHit:
		mark = "+"
	case calendar.StatusMiss:
		mark = "-"
	}
	today := " "
	if c.IsToday {
		today = "*"
	}
	return fmt.Sprintf("%3d%s%s", c.Day, mark, today)
}

func renderDay(w io.Writer, view history.DayView) {
	if view.Record == nil {
		fmt.Fprintf(w, "%s: nothing logged\n", view.Date)
		return
	}
	verdict := "below target"
	if view.Status == calendar.StatusHit {
		verdict = "target reached"
	}
	fmt.Fprintf(w, "%s: %d kcal, %s (target %d)\n", view.Date, view.Record.TotalCalories, verdict, view.Target)
	for _, f := range view.Record.Foods {
		fmt.Fprintf(w, "  - %s\n", f)
	}
}

func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
