package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/Janiciete/to-do-list/internal/model"
)

const icsDateTimeLayout = "20060102T150405"

// BuildTaskCalendarICS builds a single-event iCalendar document for a
// task, including an RRULE when the task's recurrence rule is enabled.
func BuildTaskCalendarICS(t model.Task, now time.Time) string {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "Task"
	}
	desc := strings.TrimSpace(t.Description)

	start := t.DueDate
	end := start.Add(time.Hour)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//to-do-list//Task Export//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + escapeICSText(fmt.Sprintf("%s@to-do-list", t.ID)),
		"DTSTAMP:" + now.UTC().Format("20060102T150405Z"),
		"SUMMARY:" + escapeICSText(title),
		"DTSTART:" + start.Format(icsDateTimeLayout),
		"DTEND:" + end.Format(icsDateTimeLayout),
	}
	if desc != "" {
		lines = append(lines, "DESCRIPTION:"+escapeICSText(desc))
	}
	if rrule := recurrenceToICSRRULE(t.Recurrence); rrule != "" {
		lines = append(lines, "RRULE:"+rrule)
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR", "")

	return strings.Join(lines, "\r\n")
}

func recurrenceToICSRRULE(rec model.Recurrence) string {
	if !rec.Enabled {
		return ""
	}
	interval := rec.Interval
	if interval <= 0 {
		interval = 1
	}

	freq := ""
	switch rec.Unit {
	case model.UnitDays:
		freq = "DAILY"
	case model.UnitWeeks:
		freq = "WEEKLY"
	case model.UnitMonths:
		freq = "MONTHLY"
	default:
		return ""
	}

	return fmt.Sprintf("FREQ=%s;INTERVAL=%d", freq, interval)
}

func escapeICSText(s string) string {
	repl := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
		"\r", "\\n",
	)
	return repl.Replace(s)
}
