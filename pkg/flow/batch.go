package flow

import (
	"time"

	"github.com/google/uuid"
)

// Batch describes one drain loop of a runner, from the moment it leaves the
// idle state until its queue is empty again.
type Batch struct {
	ID         uuid.UUID
	RunnerID   uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Tasks      int
}

// OpenBatch starts a Batch for the runner at the given time.
func OpenBatch(runnerID uuid.UUID, at time.Time) Batch {
	return Batch{
		ID:        uuid.New(),
		RunnerID:  runnerID,
		StartedAt: at.UTC(),
	}
}

// Close returns b with its finish time set.
func (b Batch) Close(at time.Time) Batch {
	b.FinishedAt = at.UTC()
	return b
}

func (b Batch) IsOpen() bool {
	return b.FinishedAt.IsZero()
}

// Elapsed is the time between opening and closing b, or zero while b is open.
func (b Batch) Elapsed() time.Duration {
	if b.IsOpen() {
		return 0
	}
	return b.FinishedAt.Sub(b.StartedAt)
}

func (b Batch) IsEmpty() bool {
	return b.ID == uuid.Nil
}
