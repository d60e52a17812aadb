package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/kalori/internal/config"
	"github.com/faizmokh/kalori/internal/ui"
	"github.com/faizmokh/kalori/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, settings config.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kalori",
		Short:   "Flag meals eaten inside a time window on days over a calorie limit.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)
			logger.Debug("launching browser", "strategy", settings.Strategy, "limit", settings.CaloriesPerDay)

			m, err := ui.NewModel(sampleMeals(), settings)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details to stderr")

	cmd.AddCommand(
		newDemoCommand(ctx, settings),
		newFilterCommand(ctx, settings),
		newTotalsCommand(ctx, settings),
		newStrategiesCommand(settings),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	settings, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	cmd := NewRootCommand(ctx, settings)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/kalori/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
