package command

import (
	"context"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
	"phoenixcore/internal/domain/world"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubSessionRepo struct {
	bySession map[string]game.Session
}

func (r *stubSessionRepo) GetBySessionID(_ context.Context, sessionID string) (game.Session, error) {
	sess, ok := r.bySession[sessionID]
	if !ok {
		return game.Session{}, ports.ErrNotFound
	}
	return sess, nil
}

func (r *stubSessionRepo) SaveWithVersion(_ context.Context, sess game.Session, expectedVersion int64) error {
	current, ok := r.bySession[sess.SessionID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.bySession[sess.SessionID] = sess
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.bySession[sess.SessionID] = sess
	return nil
}

type conflictOnSaveSessionRepo struct {
	stubSessionRepo
}

func (r *conflictOnSaveSessionRepo) SaveWithVersion(_ context.Context, _ game.Session, _ int64) error {
	return ports.ErrConflict
}

type stubEventRepo struct {
	events []game.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []game.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListBySessionID(_ context.Context, _ string, limit int) ([]game.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]game.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

type stubCommandExecutionRepo struct {
	byKey map[string]ports.CommandExecutionRecord
	saves int
}

func newStubCommandExecutionRepo() *stubCommandExecutionRepo {
	return &stubCommandExecutionRepo{byKey: map[string]ports.CommandExecutionRecord{}}
}

func (r *stubCommandExecutionRepo) GetByIdempotencyKey(_ context.Context, sessionID, key string) (*ports.CommandExecutionRecord, error) {
	rec, ok := r.byKey[sessionID+"::"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &rec, nil
}

func (r *stubCommandExecutionRepo) SaveExecution(_ context.Context, execution ports.CommandExecutionRecord) error {
	k := execution.SessionID + "::" + execution.IdempotencyKey
	if _, exists := r.byKey[k]; exists {
		return ports.ErrConflict
	}
	r.byKey[k] = execution
	r.saves++
	return nil
}

type stubWorldProvider struct{}

func (stubWorldProvider) Definition() world.Definition { return world.Phoenix() }

type stubMetrics struct {
	commands    map[string]int
	completions int
	failures    int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{commands: map[string]int{}}
}

func (m *stubMetrics) RecordCommand(verb string) { m.commands[verb]++ }
func (m *stubMetrics) RecordCompletion()         { m.completions++ }
func (m *stubMetrics) RecordFailure()            { m.failures++ }
