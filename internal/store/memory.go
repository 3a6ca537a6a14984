package store

import (
	"context"
	"sync"

	"github.com/clancybot/clancy/backend/internal/model/conversation"
)

// Memory implements InteractionLog with a single in-memory slice, suitable
// for development and tests.
type Memory struct {
	mu      sync.RWMutex
	records []conversation.InteractionRecord
}

// NewMemory bootstraps an empty in-memory interaction log.
func NewMemory() *Memory {
	return &Memory{records: make([]conversation.InteractionRecord, 0, 64)}
}

// Append adds a record to the log. It never fails.
func (m *Memory) Append(_ context.Context, record conversation.InteractionRecord) error {
	m.mu.Lock()
	m.records = append(m.records, record)
	m.mu.Unlock()
	return nil
}

// LastFor returns the latest record for the session.
func (m *Memory) LastFor(_ context.Context, sessionID string) (conversation.InteractionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].SessionID == sessionID {
			return m.records[i], nil
		}
	}
	return conversation.InteractionRecord{}, ErrSessionNotFound
}

// AllFor returns the session's records in insertion order.
func (m *Memory) AllFor(_ context.Context, sessionID string) ([]conversation.InteractionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []conversation.InteractionRecord
	for _, record := range m.records {
		if record.SessionID == sessionID {
			out = append(out, record)
		}
	}
	if len(out) == 0 {
		return nil, ErrSessionNotFound
	}
	return out, nil
}

// MajorsFor returns the session's non-empty MajorSelected values in order.
func (m *Memory) MajorsFor(_ context.Context, sessionID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var majors []string
	for _, record := range m.records {
		if record.SessionID == sessionID && record.MajorSelected != "" {
			majors = append(majors, record.MajorSelected)
		}
	}
	return majors, nil
}

// All returns a copy of every record in insertion order.
func (m *Memory) All(_ context.Context) ([]conversation.InteractionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make([]conversation.InteractionRecord, len(m.records))
	copy(copied, m.records)
	return copied, nil
}

// DeleteSession removes the session's records and reports whether any existed.
func (m *Memory) DeleteSession(_ context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.records[:0]
	removed := false
	for _, record := range m.records {
		if record.SessionID == sessionID {
			removed = true
			continue
		}
		kept = append(kept, record)
	}
	m.records = kept
	return removed, nil
}
