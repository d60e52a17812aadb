package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kalori/internal/config"
	"github.com/faizmokh/kalori/internal/meals"
)

// newLogger writes to the command's stderr, at debug level when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

type windowFlags struct {
	start    string
	end      string
	limit    int
	strategy string
}

func addWindowFlags(cmd *cobra.Command, flags *windowFlags, settings config.Settings) {
	cmd.Flags().StringVar(&flags.start, "start", settings.Start.String(), "Window start in HH:MM (inclusive)")
	cmd.Flags().StringVar(&flags.end, "end", settings.End.String(), "Window end in HH:MM (exclusive)")
	cmd.Flags().IntVar(&flags.limit, "limit", settings.CaloriesPerDay, "Daily calorie limit")
	cmd.Flags().StringVar(&flags.strategy, "strategy", string(settings.Strategy), "Filter implementation to use")
}

type filterOptions struct {
	window         meals.Window
	caloriesPerDay int
	strategy       meals.Strategy
	filter         meals.FilterFunc
}

func (f windowFlags) resolve() (filterOptions, error) {
	start, err := meals.ParseTimeOfDay(f.start)
	if err != nil {
		return filterOptions{}, fmt.Errorf("parse --start: %w", err)
	}
	end, err := meals.ParseTimeOfDay(f.end)
	if err != nil {
		return filterOptions{}, fmt.Errorf("parse --end: %w", err)
	}
	filter, err := meals.Lookup(f.strategy)
	if err != nil {
		return filterOptions{}, err
	}

	return filterOptions{
		window:         meals.NewWindow(start, end),
		caloriesPerDay: f.limit,
		strategy:       meals.Strategy(f.strategy),
		filter:         filter,
	}, nil
}

func (o filterOptions) apply(input []meals.Meal) []meals.MealWithExcess {
	return o.filter(input, o.window.Start, o.window.End, o.caloriesPerDay)
}

// mealsFromArgs parses meal arguments, falling back to the sample meals when none are given.
func mealsFromArgs(args []string) ([]meals.Meal, error) {
	if len(args) == 0 {
		return sampleMeals(), nil
	}
	return meals.ParseMeals(args, time.Local)
}
