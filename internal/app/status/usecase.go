// Package status exposes the read-only session snapshot consumed by
// status panels and maps: the game state, the tracking sets, and a little
// world metadata for rendering.
package status

import (
	"context"
	"errors"
	"strings"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid status request")

type Request struct {
	SessionID string `json:"session_id"`
}

type Response struct {
	PlayerName   string         `json:"player_name"`
	State        game.GameState `json:"state"`
	LocationName string         `json:"location_name"`
	Visited      []string       `json:"visited_rooms_list"`
	Unlocked     []string       `json:"unlocked_rooms"`
	TotalRooms   int            `json:"total_rooms"`
}

type UseCase struct {
	SessionRepo ports.SessionRepository
	World       ports.WorldProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	sess, err := u.SessionRepo.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}
	def := u.World.Definition()
	locationName := sess.State.Location
	if room, ok := def.Room(sess.State.Location); ok {
		locationName = room.Name
	}
	return Response{
		PlayerName:   sess.PlayerName,
		State:        sess.State,
		LocationName: locationName,
		Visited:      sess.Visited,
		Unlocked:     sess.Unlocked,
		TotalRooms:   len(def.Rooms),
	}, nil
}
