package config

import (
	"errors"
	"testing"

	"github.com/faizmokh/kalori/internal/meals"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvStart, EnvEnd, EnvLimit, EnvStrategy} {
		t.Setenv(key, "")
	}
}

func TestResolveDefaults(t *testing.T) {
	clearEnv(t)

	got, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != Defaults() {
		t.Fatalf("Resolve() = %+v, want %+v", got, Defaults())
	}
	if got.Start != meals.Clock(7, 0) || got.End != meals.Clock(12, 0) {
		t.Fatalf("Resolve() window = %s-%s, want 07:00-12:00", got.Start, got.End)
	}
}

func TestResolveHonorsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStart, "06:30")
	t.Setenv(EnvEnd, " 11:00 ")
	t.Setenv(EnvLimit, "1800")
	t.Setenv(EnvStrategy, "streams")

	got, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := Settings{
		Start:          meals.Clock(6, 30),
		End:            meals.Clock(11, 0),
		CaloriesPerDay: 1800,
		Strategy:       meals.StrategyStreams,
	}
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveRejectsBadTime(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEnd, "noon")

	if _, err := Resolve(); !errors.Is(err, meals.ErrInvalidTime) {
		t.Fatalf("Resolve() error = %v, want ErrInvalidTime", err)
	}
}

func TestResolveRejectsBadLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLimit, "lots")

	if _, err := Resolve(); err == nil {
		t.Fatalf("Resolve() error = nil, want parse failure")
	}
}

func TestResolveRejectsUnknownStrategy(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvStrategy, "consumer")

	if _, err := Resolve(); !errors.Is(err, meals.ErrUnknownStrategy) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownStrategy", err)
	}
}
