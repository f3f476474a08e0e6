// Package game implements the command interpreter and the mutable session
// state it drives: inventory, progression counters, and the visited and
// unlocked room sets tracked for the lifetime of one play session.
package game

import (
	"time"

	"phoenixcore/internal/domain/world"
)

// GameState is the per-session mutable record. Every field is written only
// by the interpreter; presentation layers treat it as read-only.
type GameState struct {
	Location      string   `json:"location"`
	Inventory     []string `json:"inventory"`
	Level         int      `json:"level"`
	XP            int      `json:"xp"`
	Credits       int      `json:"credits"`
	CommandCount  int      `json:"command_count"`
	VisitedRooms  int      `json:"visited_rooms"`
	OxygenLevel   int      `json:"oxygen_level"`
	PowerLevel    int      `json:"power_level"`
	GameCompleted bool     `json:"game_completed"`
}

// Session aggregates the game state with the session tracking sets and the
// optimistic-concurrency version used by the repositories.
type Session struct {
	SessionID  string    `json:"session_id"`
	PlayerName string    `json:"player_name"`
	State      GameState `json:"state"`
	Visited    []string  `json:"visited"`
	Unlocked   []string  `json:"unlocked"`
	Version    int64     `json:"version"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	initialLevel   = 1
	initialCredits = 100
	initialOxygen  = 100
	initialPower   = 25

	defaultPlayerName = "Alex Chen"
)

// NewSession builds a fresh session at the world's start room with the
// starter inventory and the pre-unlocked rooms.
func NewSession(def world.Definition, sessionID, playerName string) Session {
	if playerName == "" {
		playerName = defaultPlayerName
	}
	return Session{
		SessionID:  sessionID,
		PlayerName: playerName,
		State: GameState{
			Location:     def.StartRoom,
			Inventory:    append([]string(nil), def.StarterItems...),
			Level:        initialLevel,
			Credits:      initialCredits,
			VisitedRooms: 1,
			OxygenLevel:  initialOxygen,
			PowerLevel:   initialPower,
		},
		Visited:  []string{def.StartRoom},
		Unlocked: append([]string(nil), def.PreUnlocked...),
		Version:  1,
	}
}

// Clone returns a deep copy so the interpreter can work on a scratch
// session without aliasing the caller's slices.
func (s Session) Clone() Session {
	out := s
	out.State.Inventory = append([]string(nil), s.State.Inventory...)
	out.Visited = append([]string(nil), s.Visited...)
	out.Unlocked = append([]string(nil), s.Unlocked...)
	return out
}

func (s *Session) HasItem(key string) bool {
	return contains(s.State.Inventory, key)
}

// AddItem appends the item if not already carried and reports whether it
// was added. The inventory never holds duplicates.
func (s *Session) AddItem(key string) bool {
	if s.HasItem(key) {
		return false
	}
	s.State.Inventory = append(s.State.Inventory, key)
	return true
}

// MarkVisited records the room in the visited set and refreshes the derived
// VisitedRooms count. Reports whether the room was newly visited.
func (s *Session) MarkVisited(roomKey string) bool {
	added := false
	if !contains(s.Visited, roomKey) {
		s.Visited = append(s.Visited, roomKey)
		added = true
	}
	s.State.VisitedRooms = len(s.Visited)
	return added
}

// Unlock records the room in the unlocked set permanently for the session.
func (s *Session) Unlock(roomKey string) {
	if !contains(s.Unlocked, roomKey) {
		s.Unlocked = append(s.Unlocked, roomKey)
	}
}

func contains(list []string, key string) bool {
	for _, v := range list {
		if v == key {
			return true
		}
	}
	return false
}

// clampPercent keeps oxygen and power readings inside [0,100].
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
