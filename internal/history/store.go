// Package history keeps an in-memory, bounded log of computation snapshots
// and exports it to CSV on request. The store is the only state that survives
// between updates; the current result itself is always replaced in full.
package history

import (
	"sync"

	"github.com/gridsim/power-triangle/internal/model"
)

// DefaultLimit bounds how many snapshots the store retains by default.
const DefaultLimit = 50

// Store holds the most recent computation snapshots, newest first.
type Store struct {
	mu        sync.RWMutex
	snapshots []model.Snapshot
	limit     int
	onUpdate  func([]model.Snapshot) // callback for UI updates
}

// NewStore creates a store retaining at most limit snapshots. A limit below
// one falls back to DefaultLimit.
func NewStore(limit int) *Store {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// SetUpdateCallback sets the callback invoked with the full snapshot list
// after every mutation.
func (s *Store) SetUpdateCallback(callback func([]model.Snapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Add records a computation result and returns the stored snapshot. The
// oldest snapshot is dropped once the limit is reached.
func (s *Store) Add(r model.Result) model.Snapshot {
	snapshot := model.NewSnapshot(r)

	s.mu.Lock()
	s.snapshots = append([]model.Snapshot{snapshot}, s.snapshots...)
	if len(s.snapshots) > s.limit {
		s.snapshots = s.snapshots[:s.limit]
	}
	list := s.copyLocked()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(list)
	}
	return snapshot
}

// All returns a copy of the snapshot list, newest first.
func (s *Store) All() []model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Get returns the snapshot with the given ID.
func (s *Store) Get(id string) (model.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, snapshot := range s.snapshots {
		if snapshot.ID == id {
			return snapshot, true
		}
	}
	return model.Snapshot{}, false
}

// Len returns the number of retained snapshots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}

// Clear removes all snapshots.
func (s *Store) Clear() {
	s.mu.Lock()
	s.snapshots = nil
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(nil)
	}
}

func (s *Store) copyLocked() []model.Snapshot {
	list := make([]model.Snapshot, len(s.snapshots))
	copy(list, s.snapshots)
	return list
}
