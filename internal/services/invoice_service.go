package services

import (
	"fmt"

	"github.com/tyrehub/stockroom-backend/internal/models"
	"gorm.io/gorm"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// List returns every incoming invoice, unfiltered and unsorted. Invoices are
// read-only here; nothing in this app creates or edits them.
func (s *InvoiceService) List() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
