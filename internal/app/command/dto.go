package command

import "phoenixcore/internal/domain/game"

// Request identifies one command issued against one session. The
// idempotency key is optional: when a client supplies one, a retried
// request replays the stored response instead of advancing the counters
// again.
type Request struct {
	SessionID      string `json:"session_id"`
	PlayerName     string `json:"player_name,omitempty"`
	Command        string `json:"command"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// Response is the full collaborator-facing read surface after one command:
// the narrative message, the updated state, the session tracking sets, and
// the events the command emitted.
type Response struct {
	Message   string             `json:"message"`
	GameState game.GameState     `json:"game_state"`
	Visited   []string           `json:"visited_rooms_list"`
	Unlocked  []string           `json:"unlocked_rooms"`
	Events    []game.DomainEvent `json:"events"`
}
