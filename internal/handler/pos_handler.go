package handler

import (
	"inventix/internal/model"
	"inventix/internal/service"

	"github.com/gofiber/fiber/v2"
)

// POSHandler serves the three point-of-sale style entry screens: client
// sale, counter sale and stock-in.
type POSHandler struct {
	service service.SaleService
}

func NewPOSHandler(s service.SaleService) *POSHandler {
	return &POSHandler{service: s}
}

// QuoteCart recomputes cart totals server-side so every screen shows the
// same numbers the commit will persist.
// POST /api/v1/pos/quote
func (h *POSHandler) QuoteCart(c *fiber.Ctx) error {
	var req struct {
		Payment string                `json:"payment"`
		Lines   []service.LineRequest `json:"lines"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	totals, err := h.service.QuoteCart(getOrgID(c), req.Payment, req.Lines)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(totals)
}

// RecordSale commits a client sale cart.
// POST /api/v1/pos/sale
func (h *POSHandler) RecordSale(c *fiber.Ctx) error {
	var req service.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Kind == "" {
		req.Kind = model.MovementClientSale
	}

	invoice, err := h.service.RecordSale(getOrgID(c), &req, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": invoice})
}

// RecordCounterSale commits a walk-in sale against the counter contact.
// POST /api/v1/pos/counter-sale
func (h *POSHandler) RecordCounterSale(c *fiber.Ctx) error {
	var req service.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.Kind = model.MovementCounterSale
	req.ClientID = nil

	invoice, err := h.service.RecordSale(getOrgID(c), &req, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Counter sale recorded", "data": invoice})
}

// RecordStockEntry commits a stock-in cart.
// POST /api/v1/pos/stock-entry
func (h *POSHandler) RecordStockEntry(c *fiber.Ctx) error {
	var req service.StockEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	movements, err := h.service.RecordStockEntry(getOrgID(c), &req, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock entry recorded", "data": movements})
}
