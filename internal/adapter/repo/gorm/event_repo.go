package gormrepo

import (
	"context"
	"encoding/json"

	"phoenixcore/internal/adapter/repo/gorm/model"
	"phoenixcore/internal/domain/game"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, sessionID string, events []game.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return err
		}
		rows = append(rows, model.DomainEvent{
			SessionID:  sessionID,
			Type:       ev.Type,
			OccurredAt: ev.OccurredAt,
			Payload:    payload,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]game.DomainEvent, error) {
	q := getDBFromCtx(ctx, r.db).
		Where("session_id = ?", sessionID).
		Order("occurred_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []model.DomainEvent
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]game.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		_ = json.Unmarshal(row.Payload, &payload)
		events = append(events, game.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return events, nil
}
