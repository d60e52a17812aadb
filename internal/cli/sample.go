package cli

import (
	"time"

	"github.com/faizmokh/kalori/internal/meals"
)

// sampleMeals is the fixed two-day week used by demo, the browser and any
// command run without meal arguments.
func sampleMeals() []meals.Meal {
	at := func(day, hour int) time.Time {
		return time.Date(2020, time.January, day, hour, 0, 0, 0, time.Local)
	}
	return []meals.Meal{
		{DateTime: at(30, 10), Description: "Завтрак", Calories: 500},
		{DateTime: at(30, 13), Description: "Обед", Calories: 1000},
		{DateTime: at(30, 20), Description: "Ужин", Calories: 500},
		{DateTime: at(31, 0), Description: "Еда на граничное значение", Calories: 100},
		{DateTime: at(31, 10), Description: "Завтрак", Calories: 1000},
		{DateTime: at(31, 13), Description: "Обед", Calories: 500},
		{DateTime: at(31, 20), Description: "Ужин", Calories: 410},
	}
}
