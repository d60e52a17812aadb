package meals

import "time"

// Meal is a single recorded meal.
type Meal struct {
	DateTime    time.Time
	Description string
	Calories    int
}

// Date returns the calendar date the meal was eaten on.
func (m Meal) Date() Date {
	return DateOf(m.DateTime)
}

// Time returns the wall-clock time of day of the meal.
func (m Meal) Time() TimeOfDay {
	return TimeOfDayOf(m.DateTime)
}

// MealWithExcess is a Meal annotated with whether the calories eaten on its
// calendar day went over the daily limit.
type MealWithExcess struct {
	DateTime    time.Time `json:"dateTime"`
	Description string    `json:"description"`
	Calories    int       `json:"calories"`
	Excess      bool      `json:"excess"`
}

// Date returns the calendar date the meal was eaten on.
func (m MealWithExcess) Date() Date {
	return DateOf(m.DateTime)
}

func newMealWithExcess(meal Meal, excess bool) MealWithExcess {
	return MealWithExcess{
		DateTime:    meal.DateTime,
		Description: meal.Description,
		Calories:    meal.Calories,
		Excess:      excess,
	}
}
