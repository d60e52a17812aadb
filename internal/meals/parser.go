package meals

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var mealPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2}(?::\d{2})?)\s+(\d+)(?:\s+(.*))?$`)

// ParseMeal reads a meal written as "YYYY-MM-DD HH:MM <calories> <description>".
// The timestamp is interpreted in loc.
func ParseMeal(value string, loc *time.Location) (Meal, error) {
	line := strings.TrimSpace(value)
	matches := mealPattern.FindStringSubmatch(line)
	if matches == nil {
		return Meal{}, fmt.Errorf("%w %q (expected \"YYYY-MM-DD HH:MM <calories> <description>\")", ErrInvalidMeal, value)
	}

	if loc == nil {
		loc = time.Local
	}
	layout := "2006-01-02 15:04"
	if strings.Count(matches[2], ":") == 2 {
		layout = "2006-01-02 15:04:05"
	}
	when, err := time.ParseInLocation(layout, matches[1]+" "+matches[2], loc)
	if err != nil {
		return Meal{}, fmt.Errorf("%w %q: %v", ErrInvalidMeal, value, err)
	}

	calories, err := strconv.Atoi(matches[3])
	if err != nil {
		return Meal{}, fmt.Errorf("%w %q: %v", ErrInvalidMeal, value, err)
	}

	return Meal{
		DateTime:    when,
		Description: strings.TrimSpace(matches[4]),
		Calories:    calories,
	}, nil
}

// ParseMeals parses every value, stopping at the first invalid one.
func ParseMeals(values []string, loc *time.Location) ([]Meal, error) {
	parsed := make([]Meal, 0, len(values))
	for i, value := range values {
		meal, err := ParseMeal(value, loc)
		if err != nil {
			return nil, fmt.Errorf("meal %d: %w", i+1, err)
		}
		parsed = append(parsed, meal)
	}
	return parsed, nil
}
