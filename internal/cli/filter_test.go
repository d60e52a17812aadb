package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/faizmokh/kalori/internal/config"
	"github.com/faizmokh/kalori/internal/meals"
)

func TestFilterCommandParsesMealArguments(t *testing.T) {
	cmd := newFilterCommand(context.Background(), config.Defaults())
	output := executeCommand(t, cmd,
		"--limit", "1500",
		"2021-03-01 08:00 400 Oats",
		"2021-03-01 19:00 1200 Pizza",
		"2021-03-02 09:30 300 Toast",
	)

	assertContains(t, output, "limit 1500 kcal/day")
	assertContains(t, output, "[excess] 2021-03-01 08:00 Oats (400 kcal)")
	assertContains(t, output, "[ok] 2021-03-02 09:30 Toast (300 kcal)")
	assertNotContains(t, output, "Pizza")
}

func TestFilterCommandWindowIsHalfOpen(t *testing.T) {
	cmd := newFilterCommand(context.Background(), config.Defaults())
	output := executeCommand(t, cmd,
		"--start", "10:00",
		"--end", "13:00",
	)

	assertContains(t, output, "2020-01-30 10:00 Завтрак")
	assertContains(t, output, "2020-01-31 10:00 Завтрак")
	assertNotContains(t, output, "13:00 Обед")
}

func TestFilterCommandJSON(t *testing.T) {
	cmd := newFilterCommand(context.Background(), config.Defaults())
	output := executeCommand(t, cmd, "--json", "--strategy", "streams")

	var decoded []meals.MealWithExcess
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, output)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded length = %d, want 2", len(decoded))
	}
	if decoded[0].Excess || !decoded[1].Excess {
		t.Fatalf("decoded excess = [%v %v], want [false true]", decoded[0].Excess, decoded[1].Excess)
	}
}

func TestFilterCommandRejectsBadMeal(t *testing.T) {
	cmd := newFilterCommand(context.Background(), config.Defaults())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"breakfast at ten"})

	if err := cmd.Execute(); !errors.Is(err, meals.ErrInvalidMeal) {
		t.Fatalf("Execute error = %v, want ErrInvalidMeal", err)
	}
}

func TestFilterCommandRejectsUnknownStrategy(t *testing.T) {
	cmd := newFilterCommand(context.Background(), config.Defaults())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--strategy", "predicate"})

	if err := cmd.Execute(); !errors.Is(err, meals.ErrUnknownStrategy) {
		t.Fatalf("Execute error = %v, want ErrUnknownStrategy", err)
	}
}

func TestFilterCommandRejectsBadWindow(t *testing.T) {
	cmd := newFilterCommand(context.Background(), config.Defaults())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--end", "noon"})

	if err := cmd.Execute(); !errors.Is(err, meals.ErrInvalidTime) {
		t.Fatalf("Execute error = %v, want ErrInvalidTime", err)
	}
}

func TestTotalsCommandWithArguments(t *testing.T) {
	cmd := newTotalsCommand(context.Background(), config.Defaults())
	output := executeCommand(t, cmd,
		"--limit", "1000",
		"2021-03-02 09:30 300 Toast",
		"2021-03-01 08:00 400 Oats",
		"2021-03-01 19:00 1200 Pizza",
	)

	assertContains(t, output, "Daily totals, limit 1000 kcal/day")
	assertContains(t, output, "2021-03-01 1600/1000 kcal excess\n2021-03-02 300/1000 kcal ok")
}
