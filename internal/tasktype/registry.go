package tasktype

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Janiciete/to-do-list/internal/model"
	"github.com/Janiciete/to-do-list/internal/storage"
)

// StorageKey is the KV key holding the serialized type collection.
const StorageKey = "taskManagerTypes"

var ErrNameRequired = errors.New("task type name is required")

// DefaultType is seeded whenever no types are stored, so the registry
// always holds at least one type.
var DefaultType = model.TaskType{
	ID:    "general",
	Name:  "General",
	Emoji: "📋",
	Color: "#6366f1",
}

func newTypeID() model.TaskTypeID {
	return model.TaskTypeID("type_" + uuid.NewString())
}

// Registry manages the ordered sequence of user-defined task types.
// Types can be added but never updated or deleted.
type Registry struct {
	mu     sync.RWMutex
	kv     storage.KV
	logger *log.Logger
	types  []model.TaskType
}

func NewRegistry(kv storage.KV, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{kv: kv, logger: logger}
	r.types = r.load()
	return r
}

// load reads the stored sequence, seeding and persisting the default
// type when nothing usable is stored.
func (r *Registry) load() []model.TaskType {
	raw, ok, err := r.kv.Get(StorageKey)
	if err != nil {
		r.logger.Printf("task types: load failed: %v", err)
		return []model.TaskType{DefaultType}
	}
	if ok {
		var types []model.TaskType
		if err := json.Unmarshal([]byte(raw), &types); err == nil && len(types) > 0 {
			return types
		}
		if err != nil {
			r.logger.Printf("task types: corrupt type data, reseeding: %v", err)
		}
	}

	seeded := []model.TaskType{DefaultType}
	r.persist(seeded)
	return seeded
}

func (r *Registry) persist(types []model.TaskType) {
	b, err := json.Marshal(types)
	if err != nil {
		r.logger.Printf("task types: marshal failed: %v", err)
		return
	}
	if err := r.kv.Set(StorageKey, string(b)); err != nil {
		r.logger.Printf("task types: save failed: %v", err)
	}
}

// All returns a copy of the type sequence in creation order.
func (r *Registry) All() []model.TaskType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TaskType, len(r.types))
	copy(out, r.types)
	return out
}

// Add assigns a fresh id, appends, persists, and returns the full
// updated sequence; the created type is its last element.
func (r *Registry) Add(name, emoji, color string) ([]model.TaskType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = append(r.types, model.TaskType{
		ID:    newTypeID(),
		Name:  name,
		Emoji: emoji,
		Color: color,
	})
	r.persist(r.types)

	out := make([]model.TaskType, len(r.types))
	copy(out, r.types)
	return out, nil
}

// Lookup finds a type by id in a sequence. The second return value
// reports whether it was found.
func Lookup(types []model.TaskType, id model.TaskTypeID) (model.TaskType, bool) {
	for _, tt := range types {
		if tt.ID == id {
			return tt, true
		}
	}
	return model.TaskType{}, false
}
