package task

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Janiciete/to-do-list/internal/model"
	"github.com/Janiciete/to-do-list/internal/storage"
)

// StorageKey is the KV key holding the serialized task collection.
const StorageKey = "taskManagerTasks"

func newTaskID() model.TaskID {
	return model.TaskID("task_" + uuid.NewString())
}

// Store owns the authoritative in-memory task collection. The full
// collection is loaded from the KV once at construction and rewritten on
// every mutation. Persistence failures are logged and swallowed: the
// in-memory state stays the source of truth for the session.
type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	logger *log.Logger
	now    func() time.Time
	tasks  []model.Task
}

func NewStore(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
	s.tasks = s.load()
	return s
}

// load reads the stored collection, falling back to empty on any
// failure (missing key, unreadable store, malformed JSON).
func (s *Store) load() []model.Task {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Printf("task store: load failed: %v", err)
		return []model.Task{}
	}
	if !ok {
		return []model.Task{}
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Printf("task store: corrupt task data, starting empty: %v", err)
		return []model.Task{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks
}

func (s *Store) persistLocked() {
	b, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Printf("task store: marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(StorageKey, string(b)); err != nil {
		s.logger.Printf("task store: save failed: %v", err)
	}
}

// List returns a copy of the full collection in insertion order.
func (s *Store) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Get(id model.TaskID) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *Store) indexLocked(id model.TaskID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a task to the collection. Identity and creation time are
// assigned here; task IDs are never reused within the store's lifetime.
func (s *Store) Add(t model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = newTaskID()
	t.CreatedAt = s.now()
	t.Completed = false
	t.LastCompleted = nil

	s.tasks = append(s.tasks, t)
	s.persistLocked()
	return t
}

// Remove deletes the task with the given id. Unknown ids are a silent
// no-op so stale UI references never surface as errors.
func (s *Store) Remove(id model.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.tasks = out
	s.persistLocked()
}

// ToggleComplete flips completion state. Transitioning to complete
// stamps LastCompleted; transitioning back clears it. Completing a task
// whose recurrence rule is enabled spawns the successor as a second
// sequential update against the already-applied toggle, persisted
// separately, so a spawn failure never rolls back the completion.
// Toggling back to incomplete never retracts a spawned successor.
func (s *Store) ToggleComplete(id model.TaskID) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Task{}, false
	}

	t := s.tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		now := s.now()
		t.LastCompleted = &now
	} else {
		t.LastCompleted = nil
	}
	s.tasks[i] = t
	s.persistLocked()

	if t.Completed && t.Recurrence.Enabled {
		if next, ok := NewRecurringInstance(t, s.now()); ok {
			s.tasks = append(s.tasks, next)
			s.persistLocked()
		}
	}

	return t, true
}

// ToggleImportant flips the important flag. Independent of completion
// and recurrence; unknown ids are a silent no-op.
func (s *Store) ToggleImportant(id model.TaskID) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Task{}, false
	}

	s.tasks[i].Important = !s.tasks[i].Important
	s.persistLocked()
	return s.tasks[i], true
}
