package ports

import (
	"context"
	"time"

	"phoenixcore/internal/domain/game"
)

// SessionRepository persists the single mutable session aggregate.
// SaveWithVersion enforces optimistic concurrency: expectedVersion 0 creates
// a new row, any other value must match the stored version or ErrConflict
// is returned.
type SessionRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (game.Session, error)
	SaveWithVersion(ctx context.Context, sess game.Session, expectedVersion int64) error
}

// EventRepository appends and lists the per-session domain event log.
type EventRepository interface {
	Append(ctx context.Context, sessionID string, events []game.DomainEvent) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]game.DomainEvent, error)
}

type CommandResult struct {
	Message string
	Session game.Session
	Events  []game.DomainEvent
}

type CommandExecutionRecord struct {
	SessionID      string
	IdempotencyKey string
	Command        string
	Result         CommandResult
	AppliedAt      time.Time
}

// CommandExecutionRepository stores the outcome of each keyed command so a
// retried request replays the stored response instead of re-running.
type CommandExecutionRepository interface {
	GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*CommandExecutionRecord, error)
	SaveExecution(ctx context.Context, execution CommandExecutionRecord) error
}
