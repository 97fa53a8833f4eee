package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dailyeat/internal/cli"
	"dailyeat/internal/core"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record today's foods and save the day",
	Long: `Adds each --add Slot=Food entry to today's tracker, then saves the day.
Saving again on the same day replaces the earlier record for that date.

Example:

  dailyeat record --add "Breakfast=Pork Rice Soup" --add "Lunch=Boat Noodles" --add Snack=Apple`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, _ := cmd.Flags().GetStringArray("add")
		target, _ := cmd.Flags().GetInt("target")
		if len(entries) == 0 {
			return fmt.Errorf("at least one --add Slot=Food entry is required")
		}

		type entry struct {
			slot core.MealSlot
			food string
		}
		parsed := make([]entry, 0, len(entries))
		for _, e := range entries {
			slotName, food, ok := strings.Cut(e, "=")
			if !ok || strings.TrimSpace(food) == "" {
				return fmt.Errorf("invalid entry %q: expected Slot=Food", e)
			}
			slot, err := core.ParseMealSlot(slotName)
			if err != nil {
				return fmt.Errorf("invalid entry %q: %w", e, err)
			}
			parsed = append(parsed, entry{slot: slot, food: strings.TrimSpace(food)})
		}

		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			if target > 0 {
				if err := app.Tracker.SetTarget(target); err != nil {
					return err
				}
			}
			for _, e := range parsed {
				if _, err := app.Tracker.AddFood(ctx, e.slot, e.food); err != nil {
					return fmt.Errorf("failed to add %q to %s: %w", e.food, e.slot, err)
				}
			}
			st := app.Tracker.Status()

			rec, err := app.Tracker.SaveToday(ctx)
			if err != nil {
				return fmt.Errorf("failed to save today: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved %s: %d kcal (target %d, %d remaining)\n", rec.Date, rec.TotalCalories, st.Target, st.Remaining)
			for _, s := range st.Slots {
				fmt.Fprintf(out, "  %-10s %5d kcal\n", s.Slot, s.Calories)
			}
			output, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to format record output: %w", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		})
	},
}

func init() {
	recordCmd.Flags().StringArray("add", nil, "Food to add as Slot=Food (repeatable)")
	recordCmd.Flags().Int("target", 0, "Calorie target for today (defaults to TARGET_CALORIES)")
}
