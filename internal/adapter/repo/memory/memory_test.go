package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
	"phoenixcore/internal/domain/world"
)

func TestSessionRepoRoundTrip(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	sess := game.NewSession(world.Phoenix(), "sess-1", "Alex Chen")
	if err := repo.SaveWithVersion(ctx, sess, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetBySessionID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State.Location != sess.State.Location {
		t.Fatalf("location = %q, want %q", got.State.Location, sess.State.Location)
	}
	if got.Version != 1 {
		t.Fatalf("version = %d, want 1", got.Version)
	}
}

func TestSessionRepoMissing(t *testing.T) {
	repo := NewSessionRepo()
	if _, err := repo.GetBySessionID(context.Background(), "nope"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionRepoVersionConflict(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	sess := game.NewSession(world.Phoenix(), "sess-1", "")
	if err := repo.SaveWithVersion(ctx, sess, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Double create against the same id must conflict.
	if err := repo.SaveWithVersion(ctx, sess, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("create twice err = %v, want ErrConflict", err)
	}

	// Stale version must conflict too.
	stale := sess.Clone()
	stale.Version = 7
	if err := repo.SaveWithVersion(ctx, stale, 7); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("stale save err = %v, want ErrConflict", err)
	}

	next := sess.Clone()
	next.Version = 2
	next.State.XP = 42
	if err := repo.SaveWithVersion(ctx, next, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetBySessionID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State.XP != 42 || got.Version != 2 {
		t.Fatalf("got xp=%d version=%d, want xp=42 version=2", got.State.XP, got.Version)
	}
}

func TestSessionRepoIsolatesStoredCopy(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	sess := game.NewSession(world.Phoenix(), "sess-1", "")
	if err := repo.SaveWithVersion(ctx, sess, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetBySessionID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.State.Inventory = append(got.State.Inventory, "stolen_item")

	again, err := repo.GetBySessionID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	for _, key := range again.State.Inventory {
		if key == "stolen_item" {
			t.Fatal("mutating a returned session leaked into the store")
		}
	}
}

func TestCommandExecutionRepoRoundTrip(t *testing.T) {
	repo := NewCommandExecutionRepo()
	ctx := context.Background()

	sess := game.NewSession(world.Phoenix(), "sess-1", "")
	rec := ports.CommandExecutionRecord{
		SessionID:      "sess-1",
		IdempotencyKey: "key-1",
		Command:        "take codes",
		Result: ports.CommandResult{
			Message: "Taken.",
			Session: sess,
		},
		AppliedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.SaveExecution(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByIdempotencyKey(ctx, "sess-1", "key-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Result.Message != "Taken." || got.Command != "take codes" {
		t.Fatalf("got message=%q command=%q", got.Result.Message, got.Command)
	}

	// Same key for a different session is a different record.
	if _, err := repo.GetByIdempotencyKey(ctx, "sess-2", "key-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("foreign session err = %v, want ErrNotFound", err)
	}

	// Saving the same session+key twice must conflict.
	if err := repo.SaveExecution(ctx, rec); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("duplicate save err = %v, want ErrConflict", err)
	}
}

func TestCommandExecutionRepoIsolatesStoredCopy(t *testing.T) {
	repo := NewCommandExecutionRepo()
	ctx := context.Background()

	sess := game.NewSession(world.Phoenix(), "sess-1", "")
	rec := ports.CommandExecutionRecord{
		SessionID:      "sess-1",
		IdempotencyKey: "key-1",
		Command:        "look",
		Result:         ports.CommandResult{Message: "ok", Session: sess},
	}
	if err := repo.SaveExecution(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByIdempotencyKey(ctx, "sess-1", "key-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Result.Session.State.Inventory = append(got.Result.Session.State.Inventory, "stolen_item")

	again, err := repo.GetByIdempotencyKey(ctx, "sess-1", "key-1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	for _, key := range again.Result.Session.State.Inventory {
		if key == "stolen_item" {
			t.Fatal("mutating a returned record leaked into the store")
		}
	}
}

func TestEventRepoAppendAndList(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	events := []game.DomainEvent{
		{Type: game.EventCommandExecuted, OccurredAt: now, Payload: map[string]any{"verb": "look"}},
		{Type: game.EventItemTaken, OccurredAt: now.Add(time.Second), Payload: map[string]any{"item": "oxygen_tank"}},
		{Type: game.EventCommandExecuted, OccurredAt: now.Add(time.Second), Payload: map[string]any{"verb": "take"}},
	}
	if err := repo.Append(ctx, "sess-1", events); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListBySessionID(ctx, "sess-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[1].Type != game.EventItemTaken {
		t.Fatalf("got[1].Type = %q, want %q", got[1].Type, game.EventItemTaken)
	}

	limited, err := repo.ListBySessionID(ctx, "sess-1", 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited len = %d, want 2", len(limited))
	}

	other, err := repo.ListBySessionID(ctx, "sess-2", 0)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("foreign session events leaked: %d", len(other))
	}
}
