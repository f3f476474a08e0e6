package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"phoenixcore/internal/adapter/repo/gorm/model"
	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"

	"gorm.io/gorm"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepo {
	return SessionRepo{db: db}
}

func (r SessionRepo) GetBySessionID(ctx context.Context, sessionID string) (game.Session, error) {
	var m model.GameSession
	if err := getDBFromCtx(ctx, r.db).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Session{}, ports.ErrNotFound
		}
		return game.Session{}, err
	}
	return toSession(m), nil
}

func (r SessionRepo) SaveWithVersion(ctx context.Context, sess game.Session, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	row := toRow(sess)
	if expectedVersion == 0 {
		return db.Create(&row).Error
	}

	res := db.Model(&model.GameSession{}).
		Where("session_id = ? AND version = ?", sess.SessionID, expectedVersion).
		Updates(map[string]any{
			"player_name":    row.PlayerName,
			"location":       row.Location,
			"inventory":      row.Inventory,
			"level":          row.Level,
			"xp":             row.XP,
			"credits":        row.Credits,
			"command_count":  row.CommandCount,
			"visited_rooms":  row.VisitedRooms,
			"oxygen_level":   row.OxygenLevel,
			"power_level":    row.PowerLevel,
			"game_completed": row.GameCompleted,
			"visited":        row.Visited,
			"unlocked":       row.Unlocked,
			"version":        row.Version,
			"updated_at":     row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toRow(sess game.Session) model.GameSession {
	inventory, _ := json.Marshal(sess.State.Inventory)
	visited, _ := json.Marshal(sess.Visited)
	unlocked, _ := json.Marshal(sess.Unlocked)
	return model.GameSession{
		SessionID:     sess.SessionID,
		PlayerName:    sess.PlayerName,
		Location:      sess.State.Location,
		Inventory:     inventory,
		Level:         int32(sess.State.Level),
		XP:            int32(sess.State.XP),
		Credits:       int32(sess.State.Credits),
		CommandCount:  int32(sess.State.CommandCount),
		VisitedRooms:  int32(sess.State.VisitedRooms),
		OxygenLevel:   int32(sess.State.OxygenLevel),
		PowerLevel:    int32(sess.State.PowerLevel),
		GameCompleted: sess.State.GameCompleted,
		Visited:       visited,
		Unlocked:      unlocked,
		Version:       sess.Version,
		UpdatedAt:     sess.UpdatedAt,
	}
}

func toSession(m model.GameSession) game.Session {
	var inventory, visited, unlocked []string
	_ = json.Unmarshal(m.Inventory, &inventory)
	_ = json.Unmarshal(m.Visited, &visited)
	_ = json.Unmarshal(m.Unlocked, &unlocked)
	return game.Session{
		SessionID:  m.SessionID,
		PlayerName: m.PlayerName,
		State: game.GameState{
			Location:      m.Location,
			Inventory:     inventory,
			Level:         int(m.Level),
			XP:            int(m.XP),
			Credits:       int(m.Credits),
			CommandCount:  int(m.CommandCount),
			VisitedRooms:  int(m.VisitedRooms),
			OxygenLevel:   int(m.OxygenLevel),
			PowerLevel:    int(m.PowerLevel),
			GameCompleted: m.GameCompleted,
		},
		Visited:   visited,
		Unlocked:  unlocked,
		Version:   m.Version,
		UpdatedAt: m.UpdatedAt,
	}
}
