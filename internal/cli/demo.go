package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kalori/internal/config"
	"github.com/faizmokh/kalori/internal/meals"
	"github.com/faizmokh/kalori/internal/report"
)

func newDemoCommand(ctx context.Context, settings config.Settings) *cobra.Command {
	var flags windowFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every strategy over the sample meals.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve()
			if err != nil {
				return err
			}
			logger := newLogger(cmd)
			printer := report.NewPrinter(cmd.OutOrStdout())
			sample := sampleMeals()

			for i, strategy := range meals.Strategies() {
				if err := ctx.Err(); err != nil {
					return err
				}
				filter, err := meals.Lookup(string(strategy))
				if err != nil {
					return err
				}
				results := filter(sample, opts.window.Start, opts.window.End, opts.caloriesPerDay)
				logger.Debug("filtered sample meals", "strategy", strategy, "window", opts.window.String(), "results", len(results))

				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printer.Heading(string(strategy))
				printer.PrintMeals(results)
			}
			return nil
		},
	}

	addWindowFlags(cmd, &flags, settings)

	return cmd
}
