package handler

import (
	"errors"
	"fmt"

	"go-inventory-sales/internal/model"
	"go-inventory-sales/internal/service"
	"go-inventory-sales/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

type UpdateStockRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// RecordSaleRequest rejects non-positive quantities at the boundary; the
// service itself accepts them.
type RecordSaleRequest struct {
	ProductID       string  `json:"product_id" validate:"required"`
	Quantity        int     `json:"quantity" validate:"required,gt=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
}

// Helper untuk format error validasi pertama
func validationError(c *fiber.Ctx, errs []*validator.ErrorResponse) error {
	first := errs[0]
	return c.Status(400).JSON(fiber.Map{
		"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
	})
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		return validationError(c, errs)
	}

	replaced := h.service.AddProduct(product)
	return c.Status(201).JSON(fiber.Map{"message": "Product added", "replaced": replaced, "data": product})
}

func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	// c.Params returns a string backed by the request buffer, which fasthttp
	// reuses after the handler returns; copy it before it is stored as a map
	// key downstream.
	id := utils.CopyString(c.Params("id"))

	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return validationError(c, errs)
	}

	if !h.service.UpdateStock(id, req.Quantity) {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"message": "Stock updated"})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.service.RemoveProduct(id) {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"message": "Product removed"})
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllProducts())
}

func (h *InventoryHandler) RecordSale(c *fiber.Ctx) error {
	var req RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return validationError(c, errs)
	}

	outcome, err := h.service.RecordSale(req.ProductID, req.Quantity, req.DiscountPercent)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if outcome.Status == service.SaleBackOrdered {
		return c.Status(202).JSON(fiber.Map{"message": "Sale queued as back-order", "data": outcome})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": outcome})
}

func (h *InventoryHandler) GetBackOrders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"pending": h.service.PendingBackOrders()})
}

func (h *InventoryHandler) ProcessBackOrders(c *fiber.Ctx) error {
	results := h.service.ProcessBackOrders()
	if len(results) == 0 {
		return c.JSON(fiber.Map{"message": "No back-orders", "results": results})
	}
	return c.JSON(fiber.Map{"results": results})
}
