package database

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/tyrehub/stockroom-backend/internal/models"
	"gorm.io/gorm"
)

var defaultCategories = []string{
	"All Season",
	"Alloy Wheels",
	"Steel Wheels",
	"Summer",
	"Winter",
}

var defaultRimSizes = []string{
	"13", "14", "15", "16", "17", "18", "19", "20", "21", "22",
}

// SeedLookups makes sure the dropdown lookups have options on a fresh
// database. Existing rows are left untouched.
func SeedLookups(db *gorm.DB) error {
	for _, name := range defaultCategories {
		var cat models.Category
		err := db.Where(models.Category{CategoryName: name}).
			Attrs(models.Category{ID: uuid.New()}).
			FirstOrCreate(&cat).Error
		if err != nil {
			slog.Error("failed to seed category", "category", name, "error", err)
			return err
		}
	}

	for _, size := range defaultRimSizes {
		var rs models.RimSize
		err := db.Where(models.RimSize{RimSize: size}).
			Attrs(models.RimSize{ID: uuid.New()}).
			FirstOrCreate(&rs).Error
		if err != nil {
			slog.Error("failed to seed rim size", "rim_size", size, "error", err)
			return err
		}
	}

	return nil
}
