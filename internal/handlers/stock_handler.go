package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tyrehub/stockroom-backend/internal/middleware"
	"github.com/tyrehub/stockroom-backend/internal/models"
	"github.com/tyrehub/stockroom-backend/internal/services"
)

type StockHandler struct {
	stock *services.StockService
}

func NewStockHandler(stock *services.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

func (h *StockHandler) List(c *fiber.Ctx) error {
	products, err := h.stock.List()
	if err != nil {
		slog.Error("stock listing failed", "error", err)
		return fiber.ErrInternalServerError
	}
	return render(c, "stock", fiber.Map{"Stock": products})
}

func (h *StockHandler) AddForm(c *fiber.Ctx) error {
	categories, sizes, err := h.lookups()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return render(c, "add_product", fiber.Map{
		"Categories": categories,
		"RimSizes":   sizes,
	})
}

func (h *StockHandler) Add(c *fiber.Ctx) error {
	sess := middleware.FromCtx(c)

	product := productFromForm(c, sess.User)
	if err := h.stock.Add(product); err != nil {
		slog.Error("product insert failed", "error", err, "username", sess.User)
		return fiber.ErrInternalServerError
	}

	sess.Flash("success", "New Product Added Successfully")
	return c.Redirect("/stock", fiber.StatusFound)
}

func (h *StockHandler) EditForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	product, err := h.stock.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return fiber.ErrNotFound
		}
		slog.Error("product fetch failed", "error", err, "product_id", id)
		return fiber.ErrInternalServerError
	}

	categories, sizes, err := h.lookups()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return render(c, "edit_product", fiber.Map{
		"Product":    product,
		"Categories": categories,
		"RimSizes":   sizes,
	})
}

func (h *StockHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.ErrNotFound
	}

	sess := middleware.FromCtx(c)
	product := productFromForm(c, sess.User)

	if err := h.stock.Replace(id, product); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return fiber.ErrNotFound
		}
		slog.Error("product update failed", "error", err, "product_id", id, "username", sess.User)
		return fiber.ErrInternalServerError
	}

	sess.Flash("success", "Product Updated Successfully")
	return c.Redirect("/stock", fiber.StatusFound)
}

func (h *StockHandler) lookups() ([]models.Category, []models.RimSize, error) {
	categories, err := h.stock.Categories()
	if err != nil {
		slog.Error("category lookup failed", "error", err)
		return nil, nil, err
	}
	sizes, err := h.stock.RimSizes()
	if err != nil {
		slog.Error("rim size lookup failed", "error", err)
		return nil, nil, err
	}
	return categories, sizes, nil
}

// productFromForm reads every product field verbatim from the submitted
// form. OE is "true" exactly when the checkbox made it into the submission.
func productFromForm(c *fiber.Ctx, createdBy string) *models.Product {
	oe := "false"
	if c.FormValue("oe") != "" {
		oe = "true"
	}
	return &models.Product{
		CategoryName: c.FormValue("category_name"),
		Code:         c.FormValue("code"),
		RimSize:      c.FormValue("rim_size"),
		OE:           oe,
		Width:        c.FormValue("width"),
		BoltPattern:  c.FormValue("bolt_pattern"),
		ET:           c.FormValue("et"),
		Center:       c.FormValue("center"),
		TyreType:     c.FormValue("tyre_type"),
		TyreSize:     c.FormValue("tyre_size"),
		TyreModel:    c.FormValue("tyre_model"),
		Description:  c.FormValue("description"),
		Price:        c.FormValue("price"),
		CreatedBy:    createdBy,
	}
}
