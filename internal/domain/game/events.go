package game

import "time"

// DomainEvent is the append-only record emitted alongside command
// responses. Presentation layers and the replay use case consume these.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventCommandExecuted = "command_executed"
	EventRoomUnlocked    = "room_unlocked"
	EventItemTaken       = "item_taken"
	EventLevelUp         = "level_up"
	EventGameCompleted   = "game_completed"
	EventGuideRequested  = "guide_requested"
)

func newEvent(eventType string, now time.Time, payload map[string]any) DomainEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return DomainEvent{Type: eventType, OccurredAt: now, Payload: payload}
}

// stateAfter projects the fields replay needs to reconstruct a session.
func stateAfter(s Session) map[string]any {
	return map[string]any{
		"location":       s.State.Location,
		"level":          s.State.Level,
		"xp":             s.State.XP,
		"credits":        s.State.Credits,
		"command_count":  s.State.CommandCount,
		"visited_rooms":  s.State.VisitedRooms,
		"oxygen_level":   s.State.OxygenLevel,
		"power_level":    s.State.PowerLevel,
		"game_completed": s.State.GameCompleted,
	}
}
