package task

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Janiciete/to-do-list/internal/model"
)

// TypeSource exposes the current task type sequence. Implemented by the
// tasktype registry; kept as an interface so this package stays
// decoupled from it.
type TypeSource interface {
	All() []model.TaskType
}

type Handler struct {
	store        *Store
	types        TypeSource
	urgentWindow time.Duration
	now          func() time.Time
}

func NewHandler(store *Store, types TypeSource) *Handler {
	return &Handler{
		store:        store,
		types:        types,
		urgentWindow: DefaultUrgentWindow,
		now:          time.Now,
	}
}

func (h *Handler) SetUrgentWindow(d time.Duration) {
	if d > 0 {
		h.urgentWindow = d
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

type taskView struct {
	model.Task
	Status Status `json:"status"`
}

func (h *Handler) viewOf(t model.Task) taskView {
	return taskView{Task: t, Status: StatusWithin(t, h.now(), h.urgentWindow)}
}

func (h *Handler) viewsOf(tasks []model.Task) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, h.viewOf(t))
	}
	return out
}

type taskUpsert struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     *time.Time       `json:"dueDate"`
	TypeID      model.TaskTypeID `json:"typeId"`
	Important   bool             `json:"important"`
	Recurrence  model.Recurrence `json:"recurrence"`
}

// defaultDueDate is today at 23:59 local, matching the input form's
// preset.
func defaultDueDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
}

func validRecurrence(rec model.Recurrence) bool {
	if !rec.Enabled {
		return true
	}
	if rec.Interval < 1 {
		return false
	}
	switch rec.Unit {
	case model.UnitDays, model.UnitWeeks, model.UnitMonths:
		return true
	default:
		return false
	}
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()

		tasks := h.store.List()
		if typeParam := strings.TrimSpace(q.Get("type")); typeParam != "" {
			id := model.TaskTypeID(typeParam)
			tasks = FilterByType(tasks, &id)
		}

		status := strings.ToLower(strings.TrimSpace(q.Get("status")))
		views := make([]taskView, 0, len(tasks))
		for _, t := range tasks {
			v := h.viewOf(t)
			switch status {
			case "", "all":
			case "pending":
				if t.Completed {
					continue
				}
			case string(StatusCompleted), string(StatusOverdue), string(StatusUrgent), string(StatusNormal):
				if string(v.Status) != status {
					continue
				}
			default:
				writeErr(w, 400, "unknown status filter: "+status)
				return
			}
			views = append(views, v)
		}
		writeJSON(w, 200, views)
		return

	case http.MethodPost:
		var in taskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		in.Title = strings.TrimSpace(in.Title)
		if in.Title == "" {
			writeErr(w, 400, "title is required")
			return
		}
		if strings.TrimSpace(string(in.TypeID)) == "" {
			writeErr(w, 400, "typeId is required")
			return
		}
		if !validRecurrence(in.Recurrence) {
			writeErr(w, 400, "recurrence requires a positive interval and unit days, weeks or months")
			return
		}
		due := defaultDueDate(h.now())
		if in.DueDate != nil {
			due = *in.DueDate
		}

		t := h.store.Add(model.Task{
			Title:       in.Title,
			Description: strings.TrimSpace(in.Description),
			DueDate:     due,
			TypeID:      in.TypeID,
			Important:   in.Important,
			Recurrence:  in.Recurrence,
		})
		writeJSON(w, 201, h.viewOf(t))
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/tasks/{id} and /api/tasks/{id}/{action}
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	tail = strings.Trim(tail, "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}

	parts := strings.Split(tail, "/")
	id := model.TaskID(parts[0])

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			t, ok := h.store.Get(id)
			if !ok {
				writeErr(w, 404, "not found")
				return
			}
			writeJSON(w, 200, h.viewOf(t))
			return

		case http.MethodDelete:
			// removal of an unknown id is a no-op in the store; report
			// 204 either way
			h.store.Remove(id)
			w.WriteHeader(http.StatusNoContent)
			return

		default:
			writeErr(w, 405, "method not allowed")
			return
		}
	}

	if len(parts) != 2 {
		writeErr(w, 404, "not found")
		return
	}

	switch parts[1] {
	case "complete":
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, ok := h.store.ToggleComplete(id)
		if !ok {
			writeErr(w, 404, "not found")
			return
		}
		writeJSON(w, 200, h.viewOf(t))
		return

	case "important":
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, ok := h.store.ToggleImportant(id)
		if !ok {
			writeErr(w, 404, "not found")
			return
		}
		writeJSON(w, 200, h.viewOf(t))
		return

	case "calendar.ics":
		if r.Method != http.MethodGet {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, ok := h.store.Get(id)
		if !ok {
			writeErr(w, 404, "not found")
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="task.ics"`)
		_, _ = w.Write([]byte(BuildTaskCalendarICS(t, h.now())))
		return
	}

	writeErr(w, 404, "not found")
}

type groupView struct {
	Type  model.TaskType `json:"type"`
	Tasks []taskView     `json:"tasks"`
}

// /api/tasks/grouped
// Tasks grouped by type in registry order, sorted for display. Tasks
// with a dangling type reference stay in storage but are not shown.
func (h *Handler) TasksGrouped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}

	types := h.types.All()
	groups := GroupByType(h.store.List(), types)

	out := make([]groupView, 0, len(types))
	for _, tt := range types {
		tasks := groups[string(tt.ID)]
		if len(tasks) == 0 {
			continue
		}
		SortGroup(tasks)
		out = append(out, groupView{Type: tt, Tasks: h.viewsOf(tasks)})
	}
	writeJSON(w, 200, out)
}

type calendarDay struct {
	Date  string     `json:"date"`
	Tasks []taskView `json:"tasks"`
}

type calendarResponse struct {
	View CalendarView  `json:"view"`
	Days []calendarDay `json:"days"`
}

// /api/calendar?view=month|week&date=YYYY-MM-DD&type=<id>
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	q := r.URL.Query()

	view := ViewMonth
	if strings.EqualFold(strings.TrimSpace(q.Get("view")), string(ViewWeek)) {
		view = ViewWeek
	}

	anchor := h.now()
	if raw := strings.TrimSpace(q.Get("date")); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			writeErr(w, 400, "date must be YYYY-MM-DD")
			return
		}
		anchor = d
	}

	tasks := h.store.List()
	if typeParam := strings.TrimSpace(q.Get("type")); typeParam != "" {
		id := model.TaskTypeID(typeParam)
		tasks = FilterByType(tasks, &id)
	}

	grid := DayGrid(view, anchor)
	days := make([]calendarDay, 0, len(grid))
	for _, day := range grid {
		days = append(days, calendarDay{
			Date:  day.Format("2006-01-02"),
			Tasks: h.viewsOf(TasksForDay(tasks, day)),
		})
	}
	writeJSON(w, 200, calendarResponse{View: view, Days: days})
}
