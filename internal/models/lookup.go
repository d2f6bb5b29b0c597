package models

import "github.com/google/uuid"

// Category and RimSize are read-only dropdown lookups. They are advisory:
// nothing enforces that a product's category or rim size exists here.

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName string    `gorm:"size:255;not null;uniqueIndex" json:"category_name"`
}

type RimSize struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RimSize string    `gorm:"size:50;not null;uniqueIndex" json:"rim_size"`
}
