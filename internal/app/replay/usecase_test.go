package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"phoenixcore/internal/domain/game"
	"phoenixcore/internal/domain/world"
)

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
	return r.events[:limit], nil
}

func TestExecuteReconstructsLatestState(t *testing.T) {
	def := world.Phoenix()
	in := game.Interpreter{World: def}
	sess := game.NewSession(def, "s1", "")
	now := time.Unix(1700000000, 0)

	repo := &stubEventRepo{}
	for i, cmd := range []string{"look", "go north", "take bridge key"} {
		res, next := in.Execute(sess, cmd, now.Add(time.Duration(i)*time.Second))
		repo.events = append(repo.events, res.Events...)
		sess = next
	}

	resp, err := UseCase{Events: repo}.Execute(context.Background(), Request{SessionID: "s1"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if resp.LatestState.Location != "bridge" {
		t.Fatalf("expected reconstructed location bridge, got %q", resp.LatestState.Location)
	}
	if resp.LatestState.CommandCount != 3 {
		t.Fatalf("expected reconstructed count 3, got %d", resp.LatestState.CommandCount)
	}
	if resp.LatestState.XP != sess.State.XP {
		t.Fatalf("reconstructed xp %d != session xp %d", resp.LatestState.XP, sess.State.XP)
	}
}

func TestExecuteFiltersByTimeWindow(t *testing.T) {
	repo := &stubEventRepo{events: []game.DomainEvent{
		{Type: "command_executed", OccurredAt: time.Unix(100, 0)},
		{Type: "command_executed", OccurredAt: time.Unix(200, 0)},
		{Type: "command_executed", OccurredAt: time.Unix(300, 0)},
	}}

	resp, err := UseCase{Events: repo}.Execute(context.Background(), Request{
		SessionID:    "s1",
		OccurredFrom: 150,
		OccurredTo:   250,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].OccurredAt.Unix() != 200 {
		t.Fatalf("unexpected filtered events: %+v", resp.Events)
	}
}

func TestExecuteRejectsBlankSessionID(t *testing.T) {
	_, err := UseCase{Events: &stubEventRepo{}}.Execute(context.Background(), Request{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
