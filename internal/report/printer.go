package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/kalori/internal/meals"
)

// Styles colours excess meals red and the rest green.
type Styles struct {
	Heading lipgloss.Style
	Normal  lipgloss.Style
	Excess  lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds Styles bound to r so colour support follows r's output.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Bold(true),
		Normal:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Excess:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   r.NewStyle().Faint(true),
	}
}

// Meal picks the style for an annotated meal.
func (s Styles) Meal(excess bool) lipgloss.Style {
	if excess {
		return s.Excess
	}
	return s.Normal
}

// Printer writes annotated meals for people to read.
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter returns a Printer writing to out. Colours are dropped when out
// is not a terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

// FormatMeal renders "[excess] 2020-01-31 10:00 Завтрак (1000 kcal)".
func FormatMeal(meal meals.MealWithExcess) string {
	status := "ok"
	if meal.Excess {
		status = "excess"
	}

	var builder strings.Builder
	builder.Grow(40 + len(meal.Description))

	fmt.Fprintf(&builder, "[%s] %s", status, meal.DateTime.Format("2006-01-02 15:04"))
	if meal.Description != "" {
		builder.WriteByte(' ')
		builder.WriteString(meal.Description)
	}
	fmt.Fprintf(&builder, " (%d kcal)", meal.Calories)

	return builder.String()
}

// FormatDayTotal renders "2020-01-31 2010/2000 kcal excess".
func FormatDayTotal(day meals.DayTotal, caloriesPerDay int) string {
	status := "ok"
	if day.Excess {
		status = "excess"
	}
	return fmt.Sprintf("%s %d/%d kcal %s", day.Date, day.Calories, caloriesPerDay, status)
}

// Heading prints a bold title line.
func (p *Printer) Heading(title string) {
	fmt.Fprintln(p.out, p.styles.Heading.Render(title))
}

// PrintMeals prints one line per meal in the given order.
func (p *Printer) PrintMeals(results []meals.MealWithExcess) {
	if len(results) == 0 {
		fmt.Fprintln(p.out, p.styles.Muted.Render("(no meals in window)"))
		return
	}
	for _, meal := range results {
		fmt.Fprintln(p.out, p.styles.Meal(meal.Excess).Render(FormatMeal(meal)))
	}
}

// PrintTotals prints one line per day.
func (p *Printer) PrintTotals(days []meals.DayTotal, caloriesPerDay int) {
	if len(days) == 0 {
		fmt.Fprintln(p.out, p.styles.Muted.Render("(no meals)"))
		return
	}
	for _, day := range days {
		fmt.Fprintln(p.out, p.styles.Meal(day.Excess).Render(FormatDayTotal(day, caloriesPerDay)))
	}
}

// PrintJSON writes results as an indented JSON array.
func (p *Printer) PrintJSON(results []meals.MealWithExcess) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
