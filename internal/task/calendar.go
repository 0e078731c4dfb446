package task

import (
	"time"

	"github.com/Janiciete/to-do-list/internal/model"
)

type CalendarView string

const (
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

// StartOfDay truncates to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek steps back to the most recent Sunday.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DayGrid returns the sequence of days a calendar view covers. Month
// view spans whole weeks from the week containing the 1st through the
// week containing the last day, so the grid is always a multiple of 7;
// week view is the 7 days of the week containing the anchor. Unknown
// views fall back to month.
func DayGrid(view CalendarView, anchor time.Time) []time.Time {
	if view == ViewWeek {
		start := StartOfWeek(anchor)
		days := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, start.AddDate(0, 0, i))
		}
		return days
	}

	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)
	start := StartOfWeek(monthStart)
	end := StartOfWeek(monthEnd).AddDate(0, 0, 6)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// TasksForDay keeps tasks whose due date falls on the same local
// calendar day.
func TasksForDay(tasks []model.Task, day time.Time) []model.Task {
	target := StartOfDay(day)
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if StartOfDay(t.DueDate).Equal(target) {
			out = append(out, t)
		}
	}
	return out
}
