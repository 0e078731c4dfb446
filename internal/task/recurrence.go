package task

import (
	"time"

	"github.com/Janiciete/to-do-list/internal/model"
)

// NextDueDate computes when the successor of a recurring task falls due.
// It reports false for a disabled rule or an unrecognized unit. Addition
// is calendar-aware via AddDate, so month arithmetic follows Go's
// normalization (Jan 31 + 1 month lands in early March).
func NextDueDate(due time.Time, rec model.Recurrence) (time.Time, bool) {
	if !rec.Enabled {
		return time.Time{}, false
	}

	switch rec.Unit {
	case model.UnitDays:
		return due.AddDate(0, 0, rec.Interval), true
	case model.UnitWeeks:
		return due.AddDate(0, 0, 7*rec.Interval), true
	case model.UnitMonths:
		return due.AddDate(0, rec.Interval, 0), true
	default:
		return time.Time{}, false
	}
}

// NewRecurringInstance builds the next task in a recurring series from a
// just-completed one. The copy keeps title, description, type,
// importance and the recurrence rule, so the series carries them forward
// indefinitely; only identity, due date and completion state are fresh.
func NewRecurringInstance(orig model.Task, now time.Time) (model.Task, bool) {
	next, ok := NextDueDate(orig.DueDate, orig.Recurrence)
	if !ok {
		return model.Task{}, false
	}

	t := orig
	t.ID = newTaskID()
	t.DueDate = next
	t.Completed = false
	t.CreatedAt = now
	t.LastCompleted = nil
	return t, true
}
