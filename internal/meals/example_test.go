package meals_test

import (
	"fmt"
	"time"

	"github.com/faizmokh/kalori/internal/meals"
)

func ExampleFilteredByCycles() {
	day := func(d, h int) time.Time { return time.Date(2020, time.January, d, h, 0, 0, 0, time.UTC) }
	input := []meals.Meal{
		{DateTime: day(30, 10), Description: "Завтрак", Calories: 500},
		{DateTime: day(30, 13), Description: "Обед", Calories: 1000},
		{DateTime: day(30, 20), Description: "Ужин", Calories: 500},
		{DateTime: day(31, 0), Description: "Еда на граничное значение", Calories: 100},
		{DateTime: day(31, 10), Description: "Завтрак", Calories: 1000},
		{DateTime: day(31, 13), Description: "Обед", Calories: 500},
		{DateTime: day(31, 20), Description: "Ужин", Calories: 410},
	}

	for _, meal := range meals.FilteredByCycles(input, meals.Clock(7, 0), meals.Clock(12, 0), 2000) {
		fmt.Println(meal.DateTime.Format("2006-01-02 15:04"), meal.Description, meal.Calories, meal.Excess)
	}
	// Output:
	// 2020-01-30 10:00 Завтрак 500 false
	// 2020-01-31 10:00 Завтрак 1000 true
}
