package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/kalori/internal/config"
	"github.com/faizmokh/kalori/internal/meals"
	"github.com/faizmokh/kalori/internal/report"
)

const (
	windowStep = 30 * time.Minute
	limitStep  = 100
)

// Model owns Bubble Tea state for browsing annotated meals. Every change to
// the window, limit or strategy recomputes the results from the full meal list.
type Model struct {
	meals    []meals.Meal
	defaults config.Settings

	window         meals.Window
	caloriesPerDay int
	strategy       int

	results  []meals.MealWithExcess
	totals   map[meals.Date]int
	selected int

	keys   keyMap
	help   help.Model
	styles report.Styles

	statusLine string
}

// NewModel seeds a Bubble Tea model with the meals to browse and the initial settings.
func NewModel(input []meals.Meal, settings config.Settings) (Model, error) {
	strategy := slices.Index(meals.Strategies(), settings.Strategy)
	if strategy < 0 {
		_, err := meals.Lookup(string(settings.Strategy))
		return Model{}, err
	}

	m := Model{
		meals:          input,
		defaults:       settings,
		window:         meals.NewWindow(settings.Start, settings.End),
		caloriesPerDay: settings.CaloriesPerDay,
		strategy:       strategy,
		totals:         meals.DailyTotals(input),
		keys:           defaultKeyMap(),
		help:           help.New(),
		styles:         report.NewStyles(lipgloss.DefaultRenderer()),
	}
	m.recompute()
	m.statusLine = fmt.Sprintf("Loaded %d meal%s.", len(input), plural(len(input)))
	return m, nil
}

// Init has nothing to load; all meals are in memory.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.results)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.StartEarlier):
		m.window.Start = m.window.Start.Add(-windowStep)
		m.afterWindowChange()
	case key.Matches(msg, m.keys.StartLater):
		m.window.Start = m.window.Start.Add(windowStep)
		m.afterWindowChange()
	case key.Matches(msg, m.keys.EndEarlier):
		m.window.End = m.window.End.Add(-windowStep)
		m.afterWindowChange()
	case key.Matches(msg, m.keys.EndLater):
		m.window.End = m.window.End.Add(windowStep)
		m.afterWindowChange()
	case key.Matches(msg, m.keys.LimitDown):
		m.caloriesPerDay = max(0, m.caloriesPerDay-limitStep)
		m.recompute()
		m.statusLine = fmt.Sprintf("Limit %d kcal/day.", m.caloriesPerDay)
	case key.Matches(msg, m.keys.LimitUp):
		m.caloriesPerDay += limitStep
		m.recompute()
		m.statusLine = fmt.Sprintf("Limit %d kcal/day.", m.caloriesPerDay)
	case key.Matches(msg, m.keys.Strategy):
		m.strategy = (m.strategy + 1) % len(meals.Strategies())
		m.recompute()
		m.statusLine = fmt.Sprintf("Using %s.", m.strategyName())
	case key.Matches(msg, m.keys.Reset):
		reset, err := NewModel(m.meals, m.defaults)
		if err != nil {
			m.statusLine = fmt.Sprintf("Reset failed: %v", err)
			return m, nil
		}
		reset.help = m.help
		reset.statusLine = "Reset to defaults."
		return reset, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) afterWindowChange() {
	m.recompute()
	m.statusLine = fmt.Sprintf("Window %s: %d meal%s.", m.window, len(m.results), plural(len(m.results)))
}

func (m *Model) recompute() {
	filter, err := meals.Lookup(m.strategyName())
	if err != nil {
		filter = meals.FilteredByCycles
	}
	m.results = filter(m.meals, m.window.Start, m.window.End, m.caloriesPerDay)
	if m.selected >= len(m.results) {
		m.selected = max(0, len(m.results)-1)
	}
}

func (m Model) strategyName() string {
	return string(meals.Strategies()[m.strategy])
}

// Results exposes the meals currently shown.
func (m Model) Results() []meals.MealWithExcess {
	return m.results
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Meals in %s | limit %d kcal/day | %s", m.window, m.caloriesPerDay, m.strategyName())
	b.WriteString(m.styles.Heading.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", lipgloss.Width(header)))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(m.styles.Muted.Render("(no meals in window)"))
		b.WriteByte('\n')
	} else {
		for i, meal := range m.results {
			cursor := " "
			if i == m.selected {
				cursor = ">"
			}
			b.WriteString(cursor)
			b.WriteByte(' ')
			b.WriteString(m.styles.Meal(meal.Excess).Render(report.FormatMeal(meal)))
			b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  day total %d", m.totals[meal.Date()])))
			b.WriteByte('\n')
		}
	}

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
