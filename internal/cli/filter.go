package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kalori/internal/config"
	"github.com/faizmokh/kalori/internal/meals"
	"github.com/faizmokh/kalori/internal/report"
)

func newFilterCommand(ctx context.Context, settings config.Settings) *cobra.Command {
	var (
		flags      windowFlags
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "filter [\"YYYY-MM-DD HH:MM calories description\" ...]",
		Short: "Show meals inside the window, flagged when their day is over the limit.",
		Long:  "filter annotates the given meals (or the sample meals when none are given). Each argument is one meal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve()
			if err != nil {
				return err
			}
			input, err := mealsFromArgs(args)
			if err != nil {
				return err
			}

			results := opts.apply(input)
			newLogger(cmd).Debug("filtered meals",
				"strategy", opts.strategy,
				"window", opts.window.String(),
				"limit", opts.caloriesPerDay,
				"input", len(input),
				"results", len(results),
			)

			printer := report.NewPrinter(cmd.OutOrStdout())
			if outputJSON {
				return printer.PrintJSON(results)
			}
			printer.Heading(fmt.Sprintf("Meals in %s, limit %d kcal/day (%s)", opts.window, opts.caloriesPerDay, opts.strategy))
			printer.PrintMeals(results)
			return nil
		},
	}

	addWindowFlags(cmd, &flags, settings)
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit results as JSON objects")

	return cmd
}

func newTotalsCommand(ctx context.Context, settings config.Settings) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "totals [\"YYYY-MM-DD HH:MM calories description\" ...]",
		Short: "Show calories eaten per day against the limit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := mealsFromArgs(args)
			if err != nil {
				return err
			}
			days := meals.Totals(input, limit)
			newLogger(cmd).Debug("summed daily totals", "days", len(days), "limit", limit)

			printer := report.NewPrinter(cmd.OutOrStdout())
			printer.Heading(fmt.Sprintf("Daily totals, limit %d kcal/day", limit))
			printer.PrintTotals(days, limit)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", settings.CaloriesPerDay, "Daily calorie limit")

	return cmd
}

func newStrategiesCommand(settings config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available filter strategies.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, strategy := range meals.Strategies() {
				marker := " "
				if strategy == settings.Strategy {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, strategy)
			}
			return nil
		},
	}
}
