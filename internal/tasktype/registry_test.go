package tasktype

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Janiciete/to-do-list/internal/model"
	"github.com/Janiciete/to-do-list/internal/storage"
)

func TestRegistry_SeedsDefaultWhenEmpty(t *testing.T) {
	kv := storage.NewMemKV()
	r := NewRegistry(kv, log.Default())

	types := r.All()
	require.Len(t, types, 1)
	assert.Equal(t, DefaultType, types[0])

	// the seed is persisted, not just returned
	_, ok, err := kv.Get(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_SeedsDefaultOnCorruptData(t *testing.T) {
	kv := storage.NewMemKV()
	require.NoError(t, kv.Set(StorageKey, "[broken"))

	r := NewRegistry(kv, log.Default())
	types := r.All()
	require.Len(t, types, 1)
	assert.Equal(t, DefaultType.ID, types[0].ID)
}

func TestRegistry_AddAppendsWithFreshID(t *testing.T) {
	r := NewRegistry(storage.NewMemKV(), log.Default())

	types, err := r.Add("Work", "💼", "#ff0000")
	require.NoError(t, err)
	require.Len(t, types, 2)

	created := types[len(types)-1]
	assert.Equal(t, "Work", created.Name)
	assert.Equal(t, "💼", created.Emoji)
	assert.Equal(t, "#ff0000", created.Color)
	assert.NotEqual(t, model.TaskTypeID("general"), created.ID)
	assert.NotEmpty(t, created.ID)
}

func TestRegistry_AddRejectsBlankName(t *testing.T) {
	r := NewRegistry(storage.NewMemKV(), log.Default())

	_, err := r.Add("   ", "📌", "#6366f1")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Len(t, r.All(), 1)
}

func TestRegistry_PersistsAcrossRestart(t *testing.T) {
	kv := storage.NewMemKV()
	r := NewRegistry(kv, log.Default())
	_, err := r.Add("Errands", "🛒", "#22c55e")
	require.NoError(t, err)

	reopened := NewRegistry(kv, log.Default())
	types := reopened.All()
	require.Len(t, types, 2)
	assert.Equal(t, "Errands", types[1].Name)
}

func TestLookup(t *testing.T) {
	types := []model.TaskType{
		DefaultType,
		{ID: "work", Name: "Work", Emoji: "💼", Color: "#ff0000"},
	}

	got, ok := Lookup(types, "work")
	assert.True(t, ok)
	assert.Equal(t, "Work", got.Name)

	_, ok = Lookup(types, "missing")
	assert.False(t, ok)
}
