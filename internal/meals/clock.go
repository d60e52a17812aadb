package meals

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is the wall-clock offset from midnight.
type TimeOfDay time.Duration

// Clock builds a TimeOfDay from an hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayOf extracts the wall-clock time of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	hour, minute, second := t.Clock()
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(t.Nanosecond()))
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	layout := "15:04"
	if strings.Count(value, ":") == 2 {
		layout = "15:04:05"
	}
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return 0, fmt.Errorf("%w %q (expected HH:MM)", ErrInvalidTime, value)
	}
	return TimeOfDayOf(parsed), nil
}

// String renders HH:MM, adding seconds only when they are set.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	if seconds != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Add shifts t by d, clamped to [00:00, 24:00].
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	next := time.Duration(t) + d
	if next < 0 {
		return 0
	}
	if next > 24*time.Hour {
		return TimeOfDay(24 * time.Hour)
	}
	return TimeOfDay(next)
}

// IsBetweenHalfOpen reports whether start <= t < end.
func IsBetweenHalfOpen(t, start, end TimeOfDay) bool {
	return t >= start && t < end
}

// Window is the half-open time-of-day range [Start, End).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewWindow returns the window [start, end).
func NewWindow(start, end TimeOfDay) Window {
	return Window{Start: start, End: end}
}

// Contains reports whether the time of day of when falls inside the window.
func (w Window) Contains(when time.Time) bool {
	return IsBetweenHalfOpen(TimeOfDayOf(when), w.Start, w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start, w.End)
}

// Date is a calendar date. Meals are grouped by it when summing calories.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Compare orders dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, other.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, other.Day)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
