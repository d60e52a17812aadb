package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/faizmokh/kalori/internal/meals"
)

const (
	// EnvStart overrides the start of the meal window (HH:MM).
	EnvStart = "KALORI_START"
	// EnvEnd overrides the exclusive end of the meal window (HH:MM).
	EnvEnd = "KALORI_END"
	// EnvLimit overrides the daily calorie limit.
	EnvLimit = "KALORI_LIMIT"
	// EnvStrategy overrides the filter strategy name.
	EnvStrategy = "KALORI_STRATEGY"
)

const (
	DefaultCaloriesPerDay = 2000
	DefaultStrategy       = meals.StrategyCycles
)

var (
	DefaultStart = meals.Clock(7, 0)
	DefaultEnd   = meals.Clock(12, 0)
)

// Settings holds the window, limit and strategy used when no flag overrides them.
type Settings struct {
	Start          meals.TimeOfDay
	End            meals.TimeOfDay
	CaloriesPerDay int
	Strategy       meals.Strategy
}

// Defaults returns the built-in settings: 07:00-12:00, 2000 kcal, cycles.
func Defaults() Settings {
	return Settings{
		Start:          DefaultStart,
		End:            DefaultEnd,
		CaloriesPerDay: DefaultCaloriesPerDay,
		Strategy:       DefaultStrategy,
	}
}

// Resolve starts from Defaults and applies any KALORI_* environment overrides.
// Blank variables are ignored.
func Resolve() (Settings, error) {
	settings := Defaults()

	if value, ok := lookup(EnvStart); ok {
		start, err := meals.ParseTimeOfDay(value)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvStart, err)
		}
		settings.Start = start
	}

	if value, ok := lookup(EnvEnd); ok {
		end, err := meals.ParseTimeOfDay(value)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvEnd, err)
		}
		settings.End = end
	}

	if value, ok := lookup(EnvLimit); ok {
		limit, err := strconv.Atoi(value)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: parse limit %q: %w", EnvLimit, value, err)
		}
		settings.CaloriesPerDay = limit
	}

	if value, ok := lookup(EnvStrategy); ok {
		if _, err := meals.Lookup(value); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvStrategy, err)
		}
		settings.Strategy = meals.Strategy(value)
	}

	return settings, nil
}

func lookup(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
