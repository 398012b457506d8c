package handler

import (
	"errors"

	"go-inventory-sales/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.InventoryService
}

func NewReportHandler(s service.InventoryService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GenerateEndOfDayReport aggregates the ledger and starts a fresh day. POST
// because producing the report clears the ledger.
func (h *ReportHandler) GenerateEndOfDayReport(c *fiber.Ctx) error {
	report, err := h.service.GenerateEndOfDayReport()
	if err != nil {
		if errors.Is(err, service.ErrNoSales) {
			return c.JSON(fiber.Map{"message": "No sales recorded today"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "End-of-day report", "data": report})
}
