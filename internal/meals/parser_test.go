package meals

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseMeal(t *testing.T) {
	meal, err := ParseMeal("2020-01-31 10:00 1000 Завтрак", time.UTC)
	if err != nil {
		t.Fatalf("ParseMeal: %v", err)
	}

	wantTime := time.Date(2020, time.January, 31, 10, 0, 0, 0, time.UTC)
	if !meal.DateTime.Equal(wantTime) {
		t.Fatalf("meal.DateTime = %s, want %s", meal.DateTime, wantTime)
	}
	if meal.Calories != 1000 {
		t.Fatalf("meal.Calories = %d, want 1000", meal.Calories)
	}
	if meal.Description != "Завтрак" {
		t.Fatalf("meal.Description = %q, want %q", meal.Description, "Завтрак")
	}
}

func TestParseMealAcceptsSecondsAndMultiWordDescription(t *testing.T) {
	meal, err := ParseMeal("2020-01-31T00:00:05 100 Еда на граничное значение", time.UTC)
	if err != nil {
		t.Fatalf("ParseMeal: %v", err)
	}
	if meal.Time() != Clock(0, 0)+TimeOfDay(5*time.Second) {
		t.Fatalf("meal.Time() = %s, want 00:00:05", meal.Time())
	}
	if meal.Description != "Еда на граничное значение" {
		t.Fatalf("meal.Description = %q", meal.Description)
	}
}

func TestParseMealWithoutDescription(t *testing.T) {
	meal, err := ParseMeal("2020-01-30 20:00 500", time.UTC)
	if err != nil {
		t.Fatalf("ParseMeal: %v", err)
	}
	if meal.Description != "" {
		t.Fatalf("meal.Description = %q, want empty", meal.Description)
	}
}

func TestParseMealRejectsMalformedSpecs(t *testing.T) {
	for _, value := range []string{
		"",
		"Завтрак 500",
		"2020-01-30 500 Завтрак",
		"2020-01-30 10:00 lots Завтрак",
		"2020-13-30 10:00 500 Завтрак",
	} {
		if _, err := ParseMeal(value, time.UTC); !errors.Is(err, ErrInvalidMeal) {
			t.Fatalf("ParseMeal(%q) error = %v, want ErrInvalidMeal", value, err)
		}
	}
}

func TestParseMealsReportsPosition(t *testing.T) {
	_, err := ParseMeals([]string{"2020-01-30 10:00 500 Завтрак", "broken"}, time.UTC)
	if !errors.Is(err, ErrInvalidMeal) {
		t.Fatalf("ParseMeals error = %v, want ErrInvalidMeal", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, "meal 2:") {
		t.Fatalf("ParseMeals error = %q, want prefix %q", got, "meal 2:")
	}
}
