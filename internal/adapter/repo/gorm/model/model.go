// Package model defines the database rows backing the gorm repositories.
package model

import "time"

type GameSession struct {
	ID            uint   `gorm:"primaryKey"`
	SessionID     string `gorm:"uniqueIndex;size:128"`
	PlayerName    string `gorm:"size:128"`
	Location      string `gorm:"size:64"`
	Inventory     []byte `gorm:"type:jsonb"`
	Level         int32
	XP            int32
	Credits       int32
	CommandCount  int32
	VisitedRooms  int32
	OxygenLevel   int32
	PowerLevel    int32
	GameCompleted bool
	Visited       []byte `gorm:"type:jsonb"`
	Unlocked      []byte `gorm:"type:jsonb"`
	Version       int64
	UpdatedAt     time.Time
}

type CommandExecution struct {
	ID             uint   `gorm:"primaryKey"`
	SessionID      string `gorm:"uniqueIndex:idx_command_executions_session_key;size:128"`
	IdempotencyKey string `gorm:"uniqueIndex:idx_command_executions_session_key;size:128"`
	Command        string `gorm:"size:256"`
	Message        string
	Session        []byte `gorm:"type:jsonb"`
	Events         []byte `gorm:"type:jsonb"`
	AppliedAt      time.Time
}

type DomainEvent struct {
	ID         uint   `gorm:"primaryKey"`
	SessionID  string `gorm:"index;size:128"`
	Type       string `gorm:"size:64"`
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}
