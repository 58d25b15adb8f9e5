package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridsim/power-triangle/internal/model"
)

func TestStore_AddNewestFirst(t *testing.T) {
	store := NewStore(10)

	first := store.Add(model.Result{ActivePower: 1})
	second := store.Add(model.Result{ActivePower: 2})

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, 2.0, all[0].Result.ActivePower)
}

func TestStore_LimitDropsOldest(t *testing.T) {
	store := NewStore(3)

	for i := 1; i <= 5; i++ {
		store.Add(model.Result{ActivePower: float64(i)})
	}

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, 5.0, all[0].Result.ActivePower)
	assert.Equal(t, 3.0, all[2].Result.ActivePower)
}

func TestStore_InvalidLimitFallsBack(t *testing.T) {
	store := NewStore(0)

	for i := 0; i < DefaultLimit+5; i++ {
		store.Add(model.Result{})
	}

	assert.Equal(t, DefaultLimit, store.Len())
}

func TestStore_Get(t *testing.T) {
	store := NewStore(10)
	snapshot := store.Add(model.Result{ActivePower: 42})

	found, ok := store.Get(snapshot.ID)
	require.True(t, ok)
	assert.Equal(t, 42.0, found.Result.ActivePower)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(10)
	store.Add(model.Result{})
	store.Add(model.Result{})

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.All())
}

func TestStore_UpdateCallback(t *testing.T) {
	store := NewStore(10)

	var calls [][]model.Snapshot
	store.SetUpdateCallback(func(list []model.Snapshot) {
		calls = append(calls, list)
	})

	store.Add(model.Result{ActivePower: 1})
	store.Add(model.Result{ActivePower: 2})
	store.Clear()

	require.Len(t, calls, 3)
	assert.Len(t, calls[0], 1)
	assert.Len(t, calls[1], 2)
	assert.Empty(t, calls[2])
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := NewStore(10)
	store.Add(model.Result{ActivePower: 1})

	all := store.All()
	all[0].Result.ActivePower = 99

	assert.Equal(t, 1.0, store.All()[0].Result.ActivePower)
}
