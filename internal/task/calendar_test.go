package task

import (
	"strings"
	"testing"
	"time"

	"github.com/Janiciete/to-do-list/internal/model"
)

func TestDayGrid_Week(t *testing.T) {
	// 2024-03-13 is a Wednesday
	anchor := time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local)

	days := DayGrid(ViewWeek, anchor)
	if len(days) != 7 {
		t.Fatalf("week grid has %d days", len(days))
	}
	if days[0].Weekday() != time.Sunday {
		t.Fatalf("week starts on %v, want Sunday", days[0].Weekday())
	}
	if got := days[0].Format("2006-01-02"); got != "2024-03-10" {
		t.Fatalf("week start %s, want 2024-03-10", got)
	}
	if got := days[6].Format("2006-01-02"); got != "2024-03-16" {
		t.Fatalf("week end %s, want 2024-03-16", got)
	}
}

func TestDayGrid_Month(t *testing.T) {
	anchor := time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local)

	days := DayGrid(ViewMonth, anchor)
	if len(days)%7 != 0 {
		t.Fatalf("month grid of %d days is not whole weeks", len(days))
	}
	if days[0].Weekday() != time.Sunday {
		t.Fatalf("grid starts on %v, want Sunday", days[0].Weekday())
	}
	if days[len(days)-1].Weekday() != time.Saturday {
		t.Fatalf("grid ends on %v, want Saturday", days[len(days)-1].Weekday())
	}

	// March 2024: Mar 1 is a Friday, Mar 31 a Sunday => Feb 25 .. Apr 6
	if got := days[0].Format("2006-01-02"); got != "2024-02-25" {
		t.Fatalf("grid start %s, want 2024-02-25", got)
	}
	if got := days[len(days)-1].Format("2006-01-02"); got != "2024-04-06" {
		t.Fatalf("grid end %s, want 2024-04-06", got)
	}
}

func TestTasksForDay(t *testing.T) {
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, time.Local)
	tasks := []model.Task{
		{ID: "morning", DueDate: time.Date(2024, 3, 13, 8, 0, 0, 0, time.Local)},
		{ID: "night", DueDate: time.Date(2024, 3, 13, 23, 59, 0, 0, time.Local)},
		{ID: "tomorrow", DueDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local)},
	}

	got := TasksForDay(tasks, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks on the day, got %d", len(got))
	}
	if got[0].ID != "morning" || got[1].ID != "night" {
		t.Fatalf("unexpected tasks %v %v", got[0].ID, got[1].ID)
	}
}

func TestBuildTaskCalendarICS(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:          "task_abc",
		Title:       "Pay rent; again",
		Description: "transfer to landlord",
		DueDate:     time.Date(2024, 4, 1, 9, 0, 0, 0, time.Local),
		Recurrence:  model.Recurrence{Enabled: true, Interval: 1, Unit: model.UnitMonths},
	}

	ics := BuildTaskCalendarICS(task, now)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Pay rent\\; again",
		"DTSTART:20240401T090000",
		"RRULE:FREQ=MONTHLY;INTERVAL=1",
		"END:VEVENT",
	} {
		if !strings.Contains(ics, want) {
			t.Fatalf("ics missing %q:\n%s", want, ics)
		}
	}
}

func TestBuildTaskCalendarICS_NoRRULEWhenNotRecurring(t *testing.T) {
	ics := BuildTaskCalendarICS(model.Task{
		ID:      "task_once",
		Title:   "One-off",
		DueDate: time.Date(2024, 4, 1, 9, 0, 0, 0, time.Local),
	}, time.Now())

	if strings.Contains(ics, "RRULE") {
		t.Fatalf("unexpected RRULE in:\n%s", ics)
	}
}
