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

type CommandExecutionRepo struct {
	db *gorm.DB
}

func NewCommandExecutionRepo(db *gorm.DB) CommandExecutionRepo {
	return CommandExecutionRepo{db: db}
}

func (r CommandExecutionRepo) GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*ports.CommandExecutionRecord, error) {
	var m model.CommandExecution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.CommandExecution{SessionID: sessionID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &ports.CommandExecutionRecord{
		SessionID:      m.SessionID,
		IdempotencyKey: m.IdempotencyKey,
		Command:        m.Command,
		Result:         decodeCommandResult(m),
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r CommandExecutionRepo) SaveExecution(ctx context.Context, execution ports.CommandExecutionRecord) error {
	sessionJSON, _ := json.Marshal(execution.Result.Session)
	eventsJSON, _ := json.Marshal(execution.Result.Events)
	m := model.CommandExecution{
		SessionID:      execution.SessionID,
		IdempotencyKey: execution.IdempotencyKey,
		Command:        execution.Command,
		Message:        execution.Result.Message,
		Session:        sessionJSON,
		Events:         eventsJSON,
		AppliedAt:      execution.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func decodeCommandResult(m model.CommandExecution) ports.CommandResult {
	var sess game.Session
	var events []game.DomainEvent
	_ = json.Unmarshal(m.Session, &sess)
	_ = json.Unmarshal(m.Events, &events)
	return ports.CommandResult{
		Message: m.Message,
		Session: sess,
		Events:  events,
	}
}
