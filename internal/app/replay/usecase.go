// Package replay lists the per-session event log and reconstructs the
// latest observable state from it, for debugging and spectator views.
package replay

import (
	"context"
	"errors"
	"strings"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type Request struct {
	SessionID    string `json:"session_id"`
	Limit        int    `json:"limit"`
	OccurredFrom int64  `json:"occurred_from"`
	OccurredTo   int64  `json:"occurred_to"`
}

type Response struct {
	Events      []game.DomainEvent `json:"events"`
	LatestState game.GameState     `json:"latest_state"`
}

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListBySessionID(ctx, req.SessionID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, LatestState: reconstruct(events)}, nil
}

func filterByTimeWindow(events []game.DomainEvent, from, to int64) []game.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]game.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct folds command_executed events into the last observable game
// state. Events carry a state_after projection precisely for this.
func reconstruct(events []game.DomainEvent) game.GameState {
	state := game.GameState{}
	for _, evt := range events {
		if evt.Type != game.EventCommandExecuted {
			continue
		}
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		if state.CommandCount > int(num(after["command_count"])) {
			continue
		}
		state.Location, _ = after["location"].(string)
		state.Level = int(num(after["level"]))
		state.XP = int(num(after["xp"]))
		state.Credits = int(num(after["credits"]))
		state.CommandCount = int(num(after["command_count"]))
		state.VisitedRooms = int(num(after["visited_rooms"]))
		state.OxygenLevel = int(num(after["oxygen_level"]))
		state.PowerLevel = int(num(after["power_level"]))
		if completed, ok := after["game_completed"].(bool); ok {
			state.GameCompleted = completed
		}
	}
	return state
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
