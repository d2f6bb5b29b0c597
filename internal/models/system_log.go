package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemLog persists ERROR+ slog records for later inspection.
type SystemLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"index" json:"timestamp"`
	Level     string         `gorm:"size:20" json:"level"`
	Message   string         `gorm:"size:500" json:"message"`
	RequestID string         `gorm:"size:64" json:"request_id"`
	Username  string         `gorm:"size:255" json:"username"`
	Path      string         `gorm:"size:255" json:"path"`
	Error     string         `gorm:"type:text" json:"error"`
	Extra     datatypes.JSON `json:"extra"`
}
