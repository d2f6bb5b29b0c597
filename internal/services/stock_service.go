package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tyrehub/stockroom-backend/internal/models"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type StockService struct {
	db *gorm.DB
}

func NewStockService(db *gorm.DB) *StockService {
	return &StockService{db: db}
}

// List returns every product, unfiltered and unsorted.
func (s *StockService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *StockService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

func (s *StockService) Add(product *models.Product) error {
	product.ID = uuid.New()
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Replace overwrites the whole stored document at id with the submitted one.
// Select("*") forces every column out, empty strings included, so fields
// absent from the edit form do not survive from the prior version.
func (s *StockService) Replace(id uuid.UUID, product *models.Product) error {
	product.ID = id
	result := s.db.Model(&models.Product{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(product)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Categories returns the category lookup sorted ascending by name.
func (s *StockService) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("category_name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// RimSizes returns the rim size lookup sorted ascending.
func (s *StockService) RimSizes() ([]models.RimSize, error) {
	var sizes []models.RimSize
	if err := s.db.Order("rim_size asc").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to list rim sizes: %w", err)
	}
	return sizes, nil
}
