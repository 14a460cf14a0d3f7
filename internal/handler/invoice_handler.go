package handler

import (
	"inventix/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	service service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

func (h *InvoiceHandler) GetInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.List(getOrgID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(invoices)
}

// OpenInvoice returns the invoice with its line items rebuilt from the
// movements sharing the reference, ready for editing.
// GET /api/v1/invoices/:reference
func (h *InvoiceHandler) OpenInvoice(c *fiber.Ctx) error {
	edit, err := h.service.Open(getOrgID(c), c.Params("reference"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(edit)
}

// CommitInvoice replaces the invoice wholesale with the submitted lines.
// PUT /api/v1/invoices/:reference
func (h *InvoiceHandler) CommitInvoice(c *fiber.Ctx) error {
	var req service.InvoiceEditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	invoice, err := h.service.Commit(getOrgID(c), c.Params("reference"), &req, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Invoice updated", "data": invoice})
}

// DeleteInvoice removes the invoice and its movements, restoring stock.
// DELETE /api/v1/invoices/:reference
func (h *InvoiceHandler) DeleteInvoice(c *fiber.Ctx) error {
	if err := h.service.Delete(getOrgID(c), c.Params("reference"), getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}
