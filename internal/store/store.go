package store

import (
	"context"
	"errors"

	"github.com/clancybot/clancy/backend/internal/model/conversation"
)

// ErrSessionNotFound is returned when a session has no recorded interactions.
var ErrSessionNotFound = errors.New("session not found")

// InteractionLog exposes the append-only interaction history shared by the
// state machine and the admin endpoints. Implementations must preserve each
// session's insertion order and guarantee read-your-writes within the process.
type InteractionLog interface {
	// Append adds a record to the log.
	Append(ctx context.Context, record conversation.InteractionRecord) error
	// LastFor returns the latest record for the session, or ErrSessionNotFound.
	LastFor(ctx context.Context, sessionID string) (conversation.InteractionRecord, error)
	// AllFor returns the session's records in insertion order, or ErrSessionNotFound.
	AllFor(ctx context.Context, sessionID string) ([]conversation.InteractionRecord, error)
	// MajorsFor returns every non-empty MajorSelected value across the
	// session's history, in insertion order, duplicates included.
	MajorsFor(ctx context.Context, sessionID string) ([]string, error)
	// All returns every record in the log in insertion order.
	All(ctx context.Context) ([]conversation.InteractionRecord, error)
	// DeleteSession removes all of a session's records and reports whether
	// any existed.
	DeleteSession(ctx context.Context, sessionID string) (bool, error)
}
