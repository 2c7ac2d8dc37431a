package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluto-fi/plutotui/goal"
)

// goalsCmd works on the demo goal set; goals have no backend storage.
var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Savings goal commands",
	Long:  `Commands for inspecting savings goals and their progress.`,
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List savings goals",
	Long:  `List savings goals with progress, remaining amount and months to goal.`,
	RunE:  goalsListRun,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <name> <target> <current>",
	Short: "Add a savings goal",
	Long:  `Add a savings goal and print its computed progress.`,
	Args:  cobra.ExactArgs(3),
	RunE:  goalsAddRun,
}

func init() {
	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsAddCmd)

	goalsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	goalsAddCmd.Flags().Float64("contribution", 0, "monthly contribution")
	goalsAddCmd.Flags().String("priority", "medium", "priority: high, medium or low")
}

func goalsListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	store := goal.NewStore(seedGoals()...)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(store.Goals())
	case tableOutputFormat:
		return outputGoalsTable(store.Goals())
	default:
		return errors.New("unsupported output format")
	}
}

func outputGoalsTable(goals []goal.Goal) error {
	t := createStyledTable(
		"NAME",
		"PROGRESS",
		"SAVED",
		"TARGET",
		"REMAINING",
		"MONTHS TO GOAL",
		"PRIORITY",
	)

	for _, g := range goals {
		p := g.Progress()

		months := "-"
		if p.HasContribution && !p.Exceeded {
			months = strconv.Itoa(p.MonthsToGoal)
		}
		remaining := displayMoney(p.Remaining)
		if p.Exceeded {
			remaining = "exceeded"
		}

		t.Row(
			g.Name,
			fmt.Sprintf("%.1f%%", p.Percentage),
			displayMoney(g.Current),
			displayMoney(g.Target),
			remaining,
			months,
			g.Priority,
		)
	}

	fmt.Println(t)

	return nil
}

func goalsAddRun(cmd *cobra.Command, args []string) error {
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", args[1], err)
	}
	current, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid current amount %q: %w", args[2], err)
	}

	contribution, _ := cmd.Flags().GetFloat64("contribution")
	priority, _ := cmd.Flags().GetString("priority")

	store := goal.NewStore(seedGoals()...)
	goals := store.Add(goal.Goal{
		Name:                args[0],
		Target:              target,
		Current:             current,
		MonthlyContribution: contribution,
		Priority:            priority,
	})

	return outputGoalsTable(goals)
}
