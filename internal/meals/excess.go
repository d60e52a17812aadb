package meals

import (
	"fmt"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
)

// FilterFunc selects the meals eaten inside [start, end) and marks each one
// with whether its day's calories went over caloriesPerDay. Every
// implementation returns results in input order.
type FilterFunc func(meals []Meal, start, end TimeOfDay, caloriesPerDay int) []MealWithExcess

// Strategy names a FilterFunc implementation.
type Strategy string

const (
	// StrategyCycles totals the days in one loop and filters in a second.
	StrategyCycles Strategy = "cycles"
	// StrategyFast totals and filters in a single loop, annotating afterwards.
	StrategyFast Strategy = "fast"
	// StrategyStreams chains sequence operations instead of explicit loops.
	StrategyStreams Strategy = "streams"
	// StrategyDays partitions meals by date and totals each day concurrently.
	StrategyDays Strategy = "days"
)

var filters = map[Strategy]FilterFunc{
	StrategyCycles:  FilteredByCycles,
	StrategyFast:    FastFilteredByCycles,
	StrategyStreams: FilteredByStreams,
	StrategyDays:    FilteredByDays,
}

// Strategies lists every registered strategy name.
func Strategies() []Strategy {
	return []Strategy{StrategyCycles, StrategyFast, StrategyStreams, StrategyDays}
}

// Lookup returns the FilterFunc registered under name.
func Lookup(name string) (FilterFunc, error) {
	fn, ok := filters[Strategy(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (expected one of %v)", ErrUnknownStrategy, name, Strategies())
	}
	return fn, nil
}

// DailyTotals sums the calories of all meals per calendar date.
func DailyTotals(meals []Meal) map[Date]int {
	totals := make(map[Date]int)
	for _, meal := range meals {
		totals[meal.Date()] += meal.Calories
	}
	return totals
}

// DayTotal is the calorie sum of one calendar date.
type DayTotal struct {
	Date     Date
	Calories int
	Excess   bool
}

// Totals returns one DayTotal per date present in meals, oldest first.
func Totals(meals []Meal, caloriesPerDay int) []DayTotal {
	totals := DailyTotals(meals)
	days := make([]DayTotal, 0, len(totals))
	for date, calories := range totals {
		days = append(days, DayTotal{
			Date:     date,
			Calories: calories,
			Excess:   caloriesPerDay < calories,
		})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Compare(days[j].Date) < 0
	})
	return days
}

// FilteredByCycles is the reference implementation.
func FilteredByCycles(meals []Meal, start, end TimeOfDay, caloriesPerDay int) []MealWithExcess {
	caloriesSumByDate := DailyTotals(meals)

	filtered := make([]MealWithExcess, 0)
	for _, meal := range meals {
		if IsBetweenHalfOpen(meal.Time(), start, end) {
			filtered = append(filtered, annotate(meal, caloriesSumByDate, caloriesPerDay))
		}
	}
	return filtered
}

// FastFilteredByCycles walks the input once, collecting in-window meals while
// the day totals are still being summed, and annotates them once every total
// is known.
func FastFilteredByCycles(meals []Meal, start, end TimeOfDay, caloriesPerDay int) []MealWithExcess {
	caloriesSumByDate := make(map[Date]int)
	var pending []Meal

	for _, meal := range meals {
		caloriesSumByDate[meal.Date()] += meal.Calories
		if IsBetweenHalfOpen(meal.Time(), start, end) {
			pending = append(pending, meal)
		}
	}

	filtered := make([]MealWithExcess, 0, len(pending))
	for _, meal := range pending {
		filtered = append(filtered, annotate(meal, caloriesSumByDate, caloriesPerDay))
	}
	return filtered
}

// FilteredByStreams expresses the same pipeline as grouped sums, a filter and
// a map over sequences.
func FilteredByStreams(meals []Meal, start, end TimeOfDay, caloriesPerDay int) []MealWithExcess {
	caloriesSumByDate := sumBy(slices.Values(meals), Meal.Date, func(m Meal) int { return m.Calories })

	inWindow := filterSeq(slices.Values(meals), func(m Meal) bool {
		return IsBetweenHalfOpen(m.Time(), start, end)
	})
	annotated := mapSeq(inWindow, func(m Meal) MealWithExcess {
		return annotate(m, caloriesSumByDate, caloriesPerDay)
	})
	return slices.AppendSeq(make([]MealWithExcess, 0), annotated)
}

// FilteredByDays splits the meals into one partition per calendar date and
// handles each partition in its own goroutine. A partition's total is
// complete before any of its meals is annotated, and results are put back
// into input order.
func FilteredByDays(meals []Meal, start, end TimeOfDay, caloriesPerDay int) []MealWithExcess {
	partitions := make(map[Date][]int)
	for i, meal := range meals {
		date := meal.Date()
		partitions[date] = append(partitions[date], i)
	}

	annotated := make([]MealWithExcess, len(meals))
	inWindow := make([]bool, len(meals))

	var g errgroup.Group
	for _, indexes := range partitions {
		g.Go(func() error {
			total := 0
			for _, i := range indexes {
				total += meals[i].Calories
			}
			for _, i := range indexes {
				if IsBetweenHalfOpen(meals[i].Time(), start, end) {
					annotated[i] = newMealWithExcess(meals[i], caloriesPerDay < total)
					inWindow[i] = true
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	filtered := make([]MealWithExcess, 0)
	for i, ok := range inWindow {
		if ok {
			filtered = append(filtered, annotated[i])
		}
	}
	return filtered
}

// annotate looks up the meal's day total; a missing date counts as zero.
func annotate(meal Meal, caloriesSumByDate map[Date]int, caloriesPerDay int) MealWithExcess {
	return newMealWithExcess(meal, caloriesPerDay < caloriesSumByDate[meal.Date()])
}
