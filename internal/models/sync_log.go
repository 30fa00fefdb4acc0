package models

import (
	"time"
)

// Audit log action types
const (
	SyncActionCreate = "create"
	SyncActionUpdate = "update"
)

// SyncLog is the audit log for GRT sync changes: one row per create batch and one
// per updated operating unit, persisted so operators can review what the sync did.
type SyncLog struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID      string `gorm:"type:uuid;index" json:"runId"`
	ActionType string `gorm:"not null;index" json:"actionType"`
	Level      string `gorm:"default:'info'" json:"level"`
	Message    string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
}

func (SyncLog) TableName() string { return "sync_log" }
