package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/stockroom-backend/internal/services"
)

type InvoiceHandler struct {
	invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.invoices.List()
	if err != nil {
		slog.Error("invoice listing failed", "error", err)
		return fiber.ErrInternalServerError
	}
	return render(c, "invoices", fiber.Map{"Invoices": invoices})
}
