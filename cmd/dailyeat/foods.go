package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dailyeat/internal/core"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the food catalog",
	Long: `Lists the built-in foods, optionally filtered by type and meal category.

Example:

  dailyeat foods --type Snack --category Breakfast`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typeFlag, _ := cmd.Flags().GetString("type")
		categoryFlag, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")

		var (
			typ      core.FoodType
			category core.MealSlot
			err      error
		)
		if typeFlag != "" {
			if typ, err = core.ParseFoodType(typeFlag); err != nil {
				return fmt.Errorf("invalid --type %q: %w", typeFlag, err)
			}
		}
		if categoryFlag != "" {
			if category, err = core.ParseMealSlot(categoryFlag); err != nil {
				return fmt.Errorf("invalid --category %q: %w", categoryFlag, err)
			}
		}

		foods := core.DefaultCatalog().Filter(typ, category)
		if asJSON {
			if foods == nil {
				foods = []core.Food{}
			}
			return writeJSON(cmd.OutOrStdout(), foods)
		}
		if len(foods) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No foods found.")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCATEGORY\tTYPE\tKCAL\tNUTRIENTS")
		for _, f := range foods {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", f.Name, f.Category, f.Type.Label(), f.Calories, f.Nutrients)
		}
		return tw.Flush()
	},
}

func init() {
	foodsCmd.Flags().String("type", "", "Food type: Main or Snack")
	foodsCmd.Flags().String("category", "", "Meal category: Breakfast, Lunch, Dinner or Snack")
	foodsCmd.Flags().Bool("json", false, "Print the foods as JSON")
}
