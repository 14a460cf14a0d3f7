package handler

import (
	"time"

	"inventix/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetSummary aggregates sales, purchases and margin for a year, optionally
// narrowed to one month.
// GET /api/v1/dashboard/summary?year=2026&month=3
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", 0)
	if month < 0 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	summary, err := h.service.Summary(getOrgID(c), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}
