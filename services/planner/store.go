package planner

import (
	"context"
	"errors"
	"sync"
	"time"

	"travelplanner/models"
)

// ErrSubmissionInFlight is returned by Begin while the session is busy.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// StateStore keeps the submission state of each browser session.
type StateStore interface {
	// Begin atomically moves a non-busy session into the first busy state.
	Begin(ctx context.Context, sessionID string, state models.SubmissionState) error
	// SetState records a transition between busy states.
	SetState(ctx context.Context, sessionID string, state models.SubmissionState) error
	// Finish records a terminal state and frees the session for the next submission.
	Finish(ctx context.Context, sessionID string, state models.SubmissionState) error
	// State returns StateIdle for unknown or expired sessions.
	State(ctx context.Context, sessionID string) (models.SubmissionState, error)
}

type memoryEntry struct {
	state     models.SubmissionState
	updatedAt time.Time
}

// MemoryStore is a process-local StateStore.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Begin(ctx context.Context, sessionID string, state models.SubmissionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	if entry, ok := m.sessions[sessionID]; ok && entry.state.Busy() {
		return ErrSubmissionInFlight
	}
	m.sessions[sessionID] = memoryEntry{state: state, updatedAt: m.now()}
	return nil
}

func (m *MemoryStore) SetState(ctx context.Context, sessionID string, state models.SubmissionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = memoryEntry{state: state, updatedAt: m.now()}
	return nil
}

func (m *MemoryStore) Finish(ctx context.Context, sessionID string, state models.SubmissionState) error {
	return m.SetState(ctx, sessionID, state)
}

func (m *MemoryStore) State(ctx context.Context, sessionID string) (models.SubmissionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionID]
	if !ok || m.expired(entry) {
		return models.StateIdle, nil
	}
	return entry.state, nil
}

func (m *MemoryStore) expired(entry memoryEntry) bool {
	return m.ttl > 0 && m.now().Sub(entry.updatedAt) > m.ttl
}

// pruneLocked drops expired sessions that are not mid-submission.
func (m *MemoryStore) pruneLocked() {
	for id, entry := range m.sessions {
		if !entry.state.Busy() && m.expired(entry) {
			delete(m.sessions, id)
		}
	}
}
