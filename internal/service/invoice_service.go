package service

import (
	"errors"
	"fmt"

	"inventix/internal/model"
	"inventix/internal/repository"
	"inventix/internal/ws"
	"inventix/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceLine is one reconstructed line of an invoice opened for editing.
// UnitTTC is the price snapshot taken when the movement was written, not the
// current catalog price.
type InvoiceLine struct {
	ArticleID   uuid.UUID       `json:"article_id"`
	ArticleCode string          `json:"article_code"`
	ArticleName string          `json:"article_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitTTC     decimal.Decimal `json:"unit_ttc"`
}

// InvoiceEdit is the editable view of an invoice: the summary plus its line
// items rebuilt from the movements sharing the reference.
type InvoiceEdit struct {
	Invoice model.Invoice      `json:"invoice"`
	Kind    model.MovementKind `json:"kind"`
	Lines   []InvoiceLine      `json:"lines"`
	Totals  CartTotals         `json:"totals"`
}

// InvoiceEditRequest carries the surviving lines of an edited invoice.
type InvoiceEditRequest struct {
	ClientID *uuid.UUID    `json:"client_id,omitempty"`
	Date     string        `json:"date" validate:"required"`
	Payment  string        `json:"payment" validate:"required"`
	Location string        `json:"location"`
	Comment  string        `json:"comment"`
	Lines    []LineRequest `json:"lines"`
}

type InvoiceService interface {
	List(orgID uuid.UUID) ([]model.Invoice, error)
	Open(orgID uuid.UUID, reference string) (*InvoiceEdit, error)
	Commit(orgID uuid.UUID, reference string, req *InvoiceEditRequest, userID, userName string) (*model.Invoice, error)
	Delete(orgID uuid.UUID, reference string, userID, userName string) error
}

type invoiceService struct {
	articleRepo  repository.ArticleRepository
	movementRepo repository.MovementRepository
	invoiceRepo  repository.InvoiceRepository
	contactRepo  repository.ContactRepository
	settingsRepo repository.SettingsRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewInvoiceService(
	articleRepo repository.ArticleRepository,
	movementRepo repository.MovementRepository,
	invoiceRepo repository.InvoiceRepository,
	contactRepo repository.ContactRepository,
	settingsRepo repository.SettingsRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InvoiceService {
	return &invoiceService{
		articleRepo:  articleRepo,
		movementRepo: movementRepo,
		invoiceRepo:  invoiceRepo,
		contactRepo:  contactRepo,
		settingsRepo: settingsRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *invoiceService) List(orgID uuid.UUID) ([]model.Invoice, error) {
	return s.invoiceRepo.FindAll(orgID)
}

// Open loads the invoice summary and rebuilds its editable line items from
// the movements sharing the reference.
func (s *invoiceService) Open(orgID uuid.UUID, reference string) (*InvoiceEdit, error) {
	invoice, err := s.invoiceRepo.FindByReference(orgID, reference)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}

	movements, err := s.movementRepo.FindByReference(orgID, reference)
	if err != nil {
		return nil, err
	}

	kind := model.MovementClientSale
	lines := make([]InvoiceLine, 0, len(movements))
	cart := make([]CartLine, 0, len(movements))
	for i := range movements {
		m := movements[i]
		kind = m.Kind
		line := InvoiceLine{
			ArticleID: m.ArticleID,
			Quantity:  m.Quantity,
			UnitTTC:   m.UnitTTC,
		}
		if m.Article != nil {
			line.ArticleCode = m.Article.Code
			line.ArticleName = m.Article.Name
			unitTTC := m.UnitTTC
			cart = append(cart, CartLine{Article: m.Article, Quantity: m.Quantity, UnitTTC: &unitTTC})
		}
		lines = append(lines, line)
	}

	settings, err := s.settingsRepo.Get(orgID)
	if err != nil {
		return nil, err
	}
	totals := ComputeCartTotals(cart, invoice.Payment, settings.DiscountMethod, settings.DiscountPct)

	return &InvoiceEdit{Invoice: *invoice, Kind: kind, Lines: lines, Totals: totals}, nil
}

// Commit replaces an invoice wholesale in one transaction: restore stock for
// every original movement, drop the old movements and summary, then re-apply
// the surviving lines (stock decrement + movement per line) and write a new
// summary with recomputed totals. Any failure rolls the whole edit back.
func (s *invoiceService) Commit(orgID uuid.UUID, reference string, req *InvoiceEditRequest, userID, userName string) (*model.Invoice, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	original, err := s.Open(orgID, reference)
	if err != nil {
		return nil, err
	}

	date, err := ParseDay(req.Date)
	if err != nil {
		return nil, err
	}

	var client *model.Contact
	clientID := req.ClientID
	if clientID == nil {
		clientID = original.Invoice.ClientID
	}
	if clientID != nil {
		client, err = s.contactRepo.FindByID(orgID, *clientID)
		if err != nil {
			return nil, errors.New("client not found")
		}
	}

	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range req.Lines {
		if !line.Quantity.IsPositive() {
			return nil, ErrInvalidQuantity
		}
	}

	settings, err := s.settingsRepo.Get(orgID)
	if err != nil {
		return nil, err
	}

	var invoice *model.Invoice
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 1. Restore stock for every original movement.
		originalMovements, err := s.movementRepo.FindByReference(orgID, reference)
		if err != nil {
			return err
		}
		for _, m := range originalMovements {
			restore := m.Quantity
			if !m.Kind.IsSale() {
				restore = restore.Neg()
			}
			if err := s.articleRepo.AdjustStock(tx, orgID, m.ArticleID, restore, userID); err != nil {
				return err
			}
		}

		// 2-3. Drop the old movements and summary.
		if err := s.movementRepo.DeleteByReference(tx, orgID, reference); err != nil {
			return err
		}
		if err := s.invoiceRepo.DeleteByReference(tx, orgID, reference); err != nil {
			return err
		}

		// 4. Re-apply the surviving lines. Articles are re-read inside the
		// transaction so the stock check sees the restored quantities.
		cart := make([]CartLine, 0, len(req.Lines))
		for _, line := range req.Lines {
			var article model.Article
			if err := tx.First(&article, "org_id = ? AND id = ?", orgID, line.ArticleID).Error; err != nil {
				return ErrArticleNotFound
			}
			if article.Stock.LessThan(line.Quantity) {
				return fmt.Errorf("%w for article %s", ErrInsufficientStock, article.Code)
			}
			if err := s.articleRepo.AdjustStock(tx, orgID, article.ID, line.Quantity.Neg(), userID); err != nil {
				return err
			}

			cartLine := CartLine{Article: &article, Quantity: line.Quantity, UnitTTC: line.UnitTTC}
			cart = append(cart, cartLine)

			movement := &model.Movement{
				OrgID:     orgID,
				Date:      date,
				Kind:      original.Kind,
				ArticleID: article.ID,
				Quantity:  line.Quantity,
				Reference: reference,
				Payment:   req.Payment,
				UnitTTC:   cartLine.LineUnitTTC(),
				Location:  req.Location,
			}
			if client != nil {
				movement.ContactID = &client.ID
				movement.ContactName = client.DisplayName()
			} else {
				movement.ContactName = original.Invoice.ClientName
			}
			movement.CreatedBy = userID
			movement.UpdatedBy = userID
			if err := s.movementRepo.Create(tx, movement); err != nil {
				return err
			}
		}

		// 5. New summary with recomputed totals, same reference.
		totals := ComputeCartTotals(cart, req.Payment, settings.DiscountMethod, settings.DiscountPct)
		invoice = &model.Invoice{
			OrgID:     orgID,
			Reference: reference,
			Date:      date,
			Payment:   req.Payment,
			TotalTTC:  RoundCents(totals.Total),
			Location:  req.Location,
			Comment:   req.Comment,
		}
		if client != nil {
			invoice.ClientID = &client.ID
			invoice.ClientName = client.DisplayName()
		} else {
			invoice.ClientID = original.Invoice.ClientID
			invoice.ClientName = original.Invoice.ClientName
		}
		invoice.CreatedBy = original.Invoice.CreatedBy
		invoice.UpdatedBy = userID
		return s.invoiceRepo.Create(tx, invoice)
	})
	if err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastEvent(ws.Event{
			Type:    "stock_update",
			OrgID:   orgID.String(),
			Message: fmt.Sprintf("%s edited invoice %s", userName, reference),
			Payload: invoice,
		})
	}
	return invoice, nil
}

// Delete removes an invoice and its movements, restoring article stock, in
// one transaction.
func (s *invoiceService) Delete(orgID uuid.UUID, reference string, userID, userName string) error {
	if _, err := s.invoiceRepo.FindByReference(orgID, reference); err != nil {
		return ErrInvoiceNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		movements, err := s.movementRepo.FindByReference(orgID, reference)
		if err != nil {
			return err
		}
		for _, m := range movements {
			restore := m.Quantity
			if !m.Kind.IsSale() {
				restore = restore.Neg()
			}
			if err := s.articleRepo.AdjustStock(tx, orgID, m.ArticleID, restore, userID); err != nil {
				return err
			}
		}
		if err := s.movementRepo.DeleteByReference(tx, orgID, reference); err != nil {
			return err
		}
		return s.invoiceRepo.DeleteByReference(tx, orgID, reference)
	})
	if err != nil {
		return err
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastEvent(ws.Event{
			Type:    "stock_update",
			OrgID:   orgID.String(),
			Message: fmt.Sprintf("%s deleted invoice %s", userName, reference),
		})
	}
	return nil
}
