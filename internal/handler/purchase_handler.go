package handler

import (
	"inventix/internal/model"
	"inventix/internal/repository"
	"inventix/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	purchaseRepo repository.PurchaseRepository
}

func NewPurchaseHandler(purchaseRepo repository.PurchaseRepository) *PurchaseHandler {
	return &PurchaseHandler{purchaseRepo: purchaseRepo}
}

// PurchaseRequest accepts the date fields as strings so the normalizer can
// handle the formats the import sources produce.
type PurchaseRequest struct {
	Reference   string           `json:"reference"`
	Date        string           `json:"date"`
	DueDate     string           `json:"due_date"`
	PaymentDate string           `json:"payment_date"`
	SupplierID  *uuid.UUID       `json:"supplier_id,omitempty"`
	Payment     string           `json:"payment"`
	AmountHT    decimal.Decimal  `json:"amount_ht"`
	AmountTTC   decimal.Decimal  `json:"amount_ttc"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Description string           `json:"description"`
}

func (r *PurchaseRequest) apply(p *model.Purchase) error {
	date, err := service.ParseDay(r.Date)
	if err != nil {
		return err
	}
	p.Reference = r.Reference
	p.Date = date
	p.SupplierID = r.SupplierID
	p.Payment = r.Payment
	p.AmountHT = r.AmountHT
	p.AmountTTC = r.AmountTTC
	p.CategoryID = r.CategoryID
	p.Description = r.Description

	p.DueDate = nil
	if r.DueDate != "" {
		due, err := service.ParseDay(r.DueDate)
		if err != nil {
			return err
		}
		p.DueDate = &due
	}
	p.PaymentDate = nil
	if r.PaymentDate != "" {
		paid, err := service.ParseDay(r.PaymentDate)
		if err != nil {
			return err
		}
		p.PaymentDate = &paid
	}
	return nil
}

func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.purchaseRepo.FindAll(getOrgID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(purchases)
}

func (h *PurchaseHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	purchase, err := h.purchaseRepo.FindByID(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Purchase not found"})
	}
	return c.JSON(purchase)
}

func (h *PurchaseHandler) CreatePurchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	var purchase model.Purchase
	if err := req.apply(&purchase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	purchase.OrgID = getOrgID(c)
	purchase.CreatedBy = getUserID(c)
	purchase.UpdatedBy = getUserID(c)

	if err := h.purchaseRepo.Create(&purchase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Purchase created", "data": purchase})
}

func (h *PurchaseHandler) UpdatePurchase(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	existing, err := h.purchaseRepo.FindByID(getOrgID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Purchase not found"})
	}

	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := req.apply(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	existing.Supplier = nil
	existing.Category = nil
	existing.UpdatedBy = getUserID(c)

	if err := h.purchaseRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Purchase updated", "data": existing})
}

func (h *PurchaseHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	if err := h.purchaseRepo.Delete(getOrgID(c), id); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Purchase deleted"})
}

