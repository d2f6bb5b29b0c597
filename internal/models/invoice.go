package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice is an incoming supplier invoice. Suppliers send wildly different
// shapes, so the payload is kept as a schemaless JSON document and only
// listed, never edited here.
type Invoice struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Fields    datatypes.JSONMap `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
}

func (Invoice) TableName() string { return "incoming_invoices" }
