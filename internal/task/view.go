package task

import (
	"sort"
	"time"

	"github.com/Janiciete/to-do-list/internal/model"
)

// Status is a derived classification of a task's urgency relative to the
// current time. It is never stored.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusUrgent    Status = "urgent"
	StatusNormal    Status = "normal"
)

// DefaultUrgentWindow is how close a due date must be to count as urgent.
const DefaultUrgentWindow = 24 * time.Hour

func StatusOf(t model.Task, now time.Time) Status {
	return StatusWithin(t, now, DefaultUrgentWindow)
}

func StatusWithin(t model.Task, now time.Time, urgentWindow time.Duration) Status {
	if t.Completed {
		return StatusCompleted
	}
	remaining := t.DueDate.Sub(now)
	switch {
	case remaining < 0:
		return StatusOverdue
	case remaining < urgentWindow:
		return StatusUrgent
	default:
		return StatusNormal
	}
}

// UnknownGroup is the synthetic group key for tasks whose type id does
// not resolve to a known task type. Such tasks stay in storage but are
// skipped by group display.
const UnknownGroup = "unknown"

// GroupByType partitions tasks by type id, preserving input order within
// each group. Dangling type references collect under UnknownGroup.
func GroupByType(tasks []model.Task, types []model.TaskType) map[string][]model.Task {
	known := make(map[model.TaskTypeID]bool, len(types))
	for _, tt := range types {
		known[tt.ID] = true
	}

	groups := map[string][]model.Task{}
	for _, t := range tasks {
		key := string(t.TypeID)
		if !known[t.TypeID] {
			key = UnknownGroup
		}
		groups[key] = append(groups[key], t)
	}
	return groups
}

// SortGroup orders tasks for display: incomplete before completed,
// important before non-important, then due date ascending. The sort is
// stable, so equal-due-date ties keep their input order.
func SortGroup(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Important != b.Important {
			return a.Important
		}
		return a.DueDate.Before(b.DueDate)
	})
}

// FilterByType keeps tasks with a matching type id. A nil filter means
// "show all" and returns the input unchanged.
func FilterByType(tasks []model.Task, typeID *model.TaskTypeID) []model.Task {
	if typeID == nil {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.TypeID == *typeID {
			out = append(out, t)
		}
	}
	return out
}
