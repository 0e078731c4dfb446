package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Janiciete/to-do-list/internal/model"
)

var viewNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

func dueIn(d time.Duration) model.Task {
	return model.Task{DueDate: viewNow.Add(d)}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want Status
	}{
		{"completed wins over overdue", model.Task{Completed: true, DueDate: viewNow.Add(-48 * time.Hour)}, StatusCompleted},
		{"due yesterday is overdue", dueIn(-24 * time.Hour), StatusOverdue},
		{"due a second ago is overdue", dueIn(-time.Second), StatusOverdue},
		{"due in 5 hours is urgent", dueIn(5 * time.Hour), StatusUrgent},
		{"due in 23h59m is urgent", dueIn(24*time.Hour - time.Minute), StatusUrgent},
		{"due in exactly 24h is normal", dueIn(24 * time.Hour), StatusNormal},
		{"due next week is normal", dueIn(7 * 24 * time.Hour), StatusNormal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.task, viewNow))
		})
	}
}

func TestStatusWithin_CustomWindow(t *testing.T) {
	task := dueIn(36 * time.Hour)
	assert.Equal(t, StatusNormal, StatusWithin(task, viewNow, 24*time.Hour))
	assert.Equal(t, StatusUrgent, StatusWithin(task, viewNow, 48*time.Hour))
}

func testTypes() []model.TaskType {
	return []model.TaskType{
		{ID: "general", Name: "General", Emoji: "📋", Color: "#6366f1"},
		{ID: "work", Name: "Work", Emoji: "💼", Color: "#ff0000"},
	}
}

func TestGroupByType(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", TypeID: "general"},
		{ID: "t2", TypeID: "work"},
		{ID: "t3", TypeID: "general"},
		{ID: "t4", TypeID: "deleted-type"},
	}

	groups := GroupByType(tasks, testTypes())

	assert.Len(t, groups["general"], 2)
	assert.Len(t, groups["work"], 1)
	assert.Len(t, groups[UnknownGroup], 1)
	assert.Equal(t, model.TaskID("t4"), groups[UnknownGroup][0].ID)

	// flattening known groups plus unknown recovers the input multiset
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(tasks), total)
}

func TestSortGroup(t *testing.T) {
	due := func(day int) time.Time {
		return time.Date(2024, 3, day, 9, 0, 0, 0, time.Local)
	}
	tasks := []model.Task{
		{ID: "done-early", Completed: true, DueDate: due(1)},
		{ID: "late", DueDate: due(20)},
		{ID: "important-late", Important: true, DueDate: due(25)},
		{ID: "early", DueDate: due(5)},
		{ID: "important-early", Important: true, DueDate: due(8)},
	}

	SortGroup(tasks)

	got := make([]string, len(tasks))
	for i, tk := range tasks {
		got[i] = string(tk.ID)
	}
	assert.Equal(t, []string{"important-early", "important-late", "early", "late", "done-early"}, got)
}

func TestSortGroup_StableOnTies(t *testing.T) {
	due := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{ID: "first", DueDate: due},
		{ID: "second", DueDate: due},
		{ID: "third", DueDate: due},
	}

	SortGroup(tasks)

	assert.Equal(t, model.TaskID("first"), tasks[0].ID)
	assert.Equal(t, model.TaskID("second"), tasks[1].ID)
	assert.Equal(t, model.TaskID("third"), tasks[2].ID)
}

func TestFilterByType(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", TypeID: "general"},
		{ID: "t2", TypeID: "work"},
		{ID: "t3", TypeID: "general"},
	}

	assert.Equal(t, tasks, FilterByType(tasks, nil))

	general := model.TaskTypeID("general")
	got := FilterByType(tasks, &general)
	assert.Len(t, got, 2)
	for _, tk := range got {
		assert.Equal(t, general, tk.TypeID)
	}

	missing := model.TaskTypeID("nope")
	assert.Empty(t, FilterByType(tasks, &missing))
}
