package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sync run statuses
const (
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
	SyncStatusNoop    = "noop"
)

// SyncHistory records each GRT synchronization run
type SyncHistory struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID       string         `gorm:"type:uuid;uniqueIndex" json:"runId"`
	Status      string         `gorm:"not null;index" json:"status"`
	StartedAt   time.Time      `gorm:"not null" json:"startedAt"`
	CompletedAt *time.Time     `json:"completedAt"`
	Duration    int            `gorm:"default:0" json:"duration"` // milliseconds
	Created     int            `gorm:"default:0" json:"created"`  // units created
	Updated     int            `gorm:"default:0" json:"updated"`  // units updated
	Skipped     int            `gorm:"default:0" json:"skipped"`  // units unchanged
	ErrorDetail string         `gorm:"type:text" json:"errorDetail"`
	DebugInfo   datatypes.JSON `gorm:"type:jsonb" json:"debugInfo"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SyncHistory) TableName() string { return "sync_history" }
