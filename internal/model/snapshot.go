package model

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot records a finished computation for the history panel. Snapshots
// live only in memory; they leave the process only via explicit CSV export.
type Snapshot struct {
	ID        string
	Result    Result
	CreatedAt time.Time
}

// NewSnapshot wraps a result with a fresh ID and the current time.
func NewSnapshot(r Result) Snapshot {
	return Snapshot{
		ID:        uuid.NewString(),
		Result:    r,
		CreatedAt: time.Now(),
	}
}
