package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is one stock entry (a tyre or a wheel). All attributes are kept as
// submitted form strings; OE in particular is the literal "true" or "false",
// never a boolean column.
type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName string    `gorm:"size:255" json:"category_name"`
	Code         string    `gorm:"size:255" json:"code"`
	RimSize      string    `gorm:"size:50" json:"rim_size"`
	OE           string    `gorm:"column:oe;size:5" json:"oe"`
	Width        string    `gorm:"size:50" json:"width"`
	BoltPattern  string    `gorm:"size:50" json:"bolt_pattern"`
	ET           string    `gorm:"column:et;size:50" json:"et"`
	Center       string    `gorm:"size:50" json:"center"`
	TyreType     string    `gorm:"size:100" json:"tyre_type"`
	TyreSize     string    `gorm:"size:100" json:"tyre_size"`
	TyreModel    string    `gorm:"size:255" json:"tyre_model"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        string    `gorm:"size:50" json:"price"`
	CreatedBy    string    `gorm:"size:255" json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "stock_level" }
