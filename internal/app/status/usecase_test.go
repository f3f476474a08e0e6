package status

import (
	"context"
	"errors"
	"testing"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
	"phoenixcore/internal/domain/world"
)

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

func (r *stubSessionRepo) SaveWithVersion(_ context.Context, sess game.Session, _ int64) error {
	r.bySession[sess.SessionID] = sess
	return nil
}

type stubWorldProvider struct{}

func (stubWorldProvider) Definition() world.Definition { return world.Phoenix() }

func TestExecuteReturnsSnapshot(t *testing.T) {
	def := world.Phoenix()
	sess := game.NewSession(def, "s1", "Ripley")
	repo := &stubSessionRepo{bySession: map[string]game.Session{"s1": sess}}

	resp, err := UseCase{SessionRepo: repo, World: stubWorldProvider{}}.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.PlayerName != "Ripley" {
		t.Fatalf("unexpected player name %q", resp.PlayerName)
	}
	if resp.LocationName != "Command Center" {
		t.Fatalf("unexpected location name %q", resp.LocationName)
	}
	if resp.TotalRooms != 16 {
		t.Fatalf("expected 16 total rooms, got %d", resp.TotalRooms)
	}
	if resp.State.OxygenLevel != 100 {
		t.Fatalf("unexpected oxygen %d", resp.State.OxygenLevel)
	}
}

func TestExecuteRejectsBlankSessionID(t *testing.T) {
	_, err := UseCase{}.Execute(context.Background(), Request{SessionID: " "})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestExecutePropagatesNotFound(t *testing.T) {
	repo := &stubSessionRepo{bySession: map[string]game.Session{}}
	_, err := UseCase{SessionRepo: repo, World: stubWorldProvider{}}.Execute(context.Background(), Request{SessionID: "ghost"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
