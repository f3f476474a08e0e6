// Package memory provides process-local repository implementations used by
// the single-player CLI and by tests. Versioning semantics match the gorm
// adapter so use cases behave identically against either backend.
package memory

import (
	"context"
	"sync"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
)

type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]game.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]game.Session)}
}

func (r *SessionRepo) GetBySessionID(_ context.Context, sessionID string) (game.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[sessionID]
	if !ok {
		return game.Session{}, ports.ErrNotFound
	}
	return sess.Clone(), nil
}

func (r *SessionRepo) SaveWithVersion(_ context.Context, sess game.Session, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sessions[sess.SessionID]
	if expectedVersion == 0 {
		if ok {
			return ports.ErrConflict
		}
		r.sessions[sess.SessionID] = sess.Clone()
		return nil
	}
	if !ok || stored.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.sessions[sess.SessionID] = sess.Clone()
	return nil
}

type EventRepo struct {
	mu     sync.Mutex
	events map[string][]game.DomainEvent
}

func NewEventRepo() *EventRepo {
	return &EventRepo{events: make(map[string][]game.DomainEvent)}
}

func (r *EventRepo) Append(_ context.Context, sessionID string, events []game.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[sessionID] = append(r.events[sessionID], events...)
	return nil
}

func (r *EventRepo) ListBySessionID(_ context.Context, sessionID string, limit int) ([]game.DomainEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.events[sessionID]
	if limit > 0 && limit < len(stored) {
		stored = stored[:limit]
	}
	out := make([]game.DomainEvent, len(stored))
	copy(out, stored)
	return out, nil
}

type CommandExecutionRepo struct {
	mu         sync.Mutex
	executions map[string]ports.CommandExecutionRecord
}

func NewCommandExecutionRepo() *CommandExecutionRepo {
	return &CommandExecutionRepo{executions: make(map[string]ports.CommandExecutionRecord)}
}

func execKey(sessionID, key string) string {
	return sessionID + "::" + key
}

func (r *CommandExecutionRepo) GetByIdempotencyKey(_ context.Context, sessionID, key string) (*ports.CommandExecutionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.executions[execKey(sessionID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := rec
	out.Result.Session = rec.Result.Session.Clone()
	return &out, nil
}

func (r *CommandExecutionRepo) SaveExecution(_ context.Context, execution ports.CommandExecutionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := execKey(execution.SessionID, execution.IdempotencyKey)
	if _, exists := r.executions[k]; exists {
		return ports.ErrConflict
	}
	execution.Result.Session = execution.Result.Session.Clone()
	r.executions[k] = execution
	return nil
}

// TxManager is a no-op transaction boundary for the in-memory repositories.
type TxManager struct{}

func NewTxManager() TxManager {
	return TxManager{}
}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
