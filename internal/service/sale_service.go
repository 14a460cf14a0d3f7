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

var (
	ErrEmptyCart         = errors.New("cart has no lines")
	ErrArticleNotFound   = errors.New("article not found")
	ErrClientRequired    = errors.New("client sale requires a client")
	ErrNoCounterContact  = errors.New("organization has no counter-sale contact")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

// LineRequest is one cart line as submitted by the POS screens.
type LineRequest struct {
	ArticleID uuid.UUID        `json:"article_id" validate:"uuid_required"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitTTC   *decimal.Decimal `json:"unit_ttc,omitempty"` // Overrides catalog price
}

// SaleRequest covers both named-client and counter sales.
type SaleRequest struct {
	Kind     model.MovementKind `json:"kind" validate:"required,oneof=client_sale counter_sale"`
	ClientID *uuid.UUID         `json:"client_id,omitempty"`
	Date     string             `json:"date" validate:"required"`
	Payment  string             `json:"payment" validate:"required"`
	Location string             `json:"location"`
	Comment  string             `json:"comment"`
	Lines    []LineRequest      `json:"lines"`
}

// StockEntryRequest records incoming stock, optionally against a supplier.
type StockEntryRequest struct {
	SupplierID *uuid.UUID    `json:"supplier_id,omitempty"`
	Date       string        `json:"date" validate:"required"`
	Location   string        `json:"location"`
	Lines      []LineRequest `json:"lines"`
}

type SaleService interface {
	RecordSale(orgID uuid.UUID, req *SaleRequest, userID, userName string) (*model.Invoice, error)
	RecordStockEntry(orgID uuid.UUID, req *StockEntryRequest, userID, userName string) ([]model.Movement, error)
	QuoteCart(orgID uuid.UUID, payment string, lines []LineRequest) (*CartTotals, error)
}

type saleService struct {
	articleRepo  repository.ArticleRepository
	movementRepo repository.MovementRepository
	invoiceRepo  repository.InvoiceRepository
	contactRepo  repository.ContactRepository
	settingsRepo repository.SettingsRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewSaleService(
	articleRepo repository.ArticleRepository,
	movementRepo repository.MovementRepository,
	invoiceRepo repository.InvoiceRepository,
	contactRepo repository.ContactRepository,
	settingsRepo repository.SettingsRepository,
	db *gorm.DB,
	hub *ws.Hub,
) SaleService {
	return &saleService{
		articleRepo:  articleRepo,
		movementRepo: movementRepo,
		invoiceRepo:  invoiceRepo,
		contactRepo:  contactRepo,
		settingsRepo: settingsRepo,
		db:           db,
		wsHub:        hub,
	}
}

// resolveCart loads every line's article and returns cart lines ready for
// totals computation.
func (s *saleService) resolveCart(orgID uuid.UUID, lines []LineRequest) ([]CartLine, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	cart := make([]CartLine, 0, len(lines))
	for _, line := range lines {
		if !line.Quantity.IsPositive() {
			return nil, ErrInvalidQuantity
		}
		article, err := s.articleRepo.FindByID(orgID, line.ArticleID)
		if err != nil {
			return nil, ErrArticleNotFound
		}
		cart = append(cart, CartLine{Article: article, Quantity: line.Quantity, UnitTTC: line.UnitTTC})
	}
	return cart, nil
}

func (s *saleService) QuoteCart(orgID uuid.UUID, payment string, lines []LineRequest) (*CartTotals, error) {
	cart, err := s.resolveCart(orgID, lines)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(orgID)
	if err != nil {
		return nil, err
	}
	totals := ComputeCartTotals(cart, payment, settings.DiscountMethod, settings.DiscountPct)
	return &totals, nil
}

// RecordSale commits a whole cart in one transaction: per line the article
// stock is decremented and a movement written, then the invoice summary row
// is created with the recomputed totals.
func (s *saleService) RecordSale(orgID uuid.UUID, req *SaleRequest, userID, userName string) (*model.Invoice, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	date, err := ParseDay(req.Date)
	if err != nil {
		return nil, err
	}

	// Resolve the counterparty: named client for client sales, the
	// organization's walk-in contact for counter sales.
	var client *model.Contact
	if req.Kind == model.MovementCounterSale {
		client, err = s.contactRepo.FindCounter(orgID)
		if err != nil {
			return nil, ErrNoCounterContact
		}
	} else {
		if req.ClientID == nil {
			return nil, ErrClientRequired
		}
		client, err = s.contactRepo.FindByID(orgID, *req.ClientID)
		if err != nil {
			return nil, errors.New("client not found")
		}
	}

	cart, err := s.resolveCart(orgID, req.Lines)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(orgID)
	if err != nil {
		return nil, err
	}
	totals := ComputeCartTotals(cart, req.Payment, settings.DiscountMethod, settings.DiscountPct)

	var invoice *model.Invoice
	err = s.db.Transaction(func(tx *gorm.DB) error {
		reference, err := s.invoiceRepo.NextReference(orgID, date.Year())
		if err != nil {
			return err
		}

		for _, line := range cart {
			if line.Article.Stock.LessThan(line.Quantity) {
				return fmt.Errorf("%w for article %s", ErrInsufficientStock, line.Article.Code)
			}
			if err := s.articleRepo.AdjustStock(tx, orgID, line.Article.ID, line.Quantity.Neg(), userID); err != nil {
				return err
			}

			movement := &model.Movement{
				OrgID:       orgID,
				Date:        date,
				Kind:        req.Kind,
				ArticleID:   line.Article.ID,
				Quantity:    line.Quantity,
				ContactID:   &client.ID,
				Reference:   reference,
				Payment:     req.Payment,
				UnitTTC:     line.LineUnitTTC(),
				Location:    req.Location,
				ContactName: client.DisplayName(),
			}
			movement.CreatedBy = userID
			movement.UpdatedBy = userID
			if err := s.movementRepo.Create(tx, movement); err != nil {
				return err
			}
		}

		invoice = &model.Invoice{
			OrgID:      orgID,
			Reference:  reference,
			Date:       date,
			ClientID:   &client.ID,
			ClientName: client.DisplayName(),
			Payment:    req.Payment,
			TotalTTC:   RoundCents(totals.Total),
			Location:   req.Location,
			Comment:    req.Comment,
		}
		invoice.CreatedBy = userID
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
			Message: fmt.Sprintf("%s recorded sale %s", userName, invoice.Reference),
			Payload: invoice,
		})
	}
	return invoice, nil
}

// RecordStockEntry increments stock per line and writes stock_in movements.
// No invoice row is created for entries.
func (s *saleService) RecordStockEntry(orgID uuid.UUID, req *StockEntryRequest, userID, userName string) ([]model.Movement, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	date, err := ParseDay(req.Date)
	if err != nil {
		return nil, err
	}

	var supplier *model.Contact
	if req.SupplierID != nil {
		supplier, err = s.contactRepo.FindByID(orgID, *req.SupplierID)
		if err != nil {
			return nil, errors.New("supplier not found")
		}
	}

	cart, err := s.resolveCart(orgID, req.Lines)
	if err != nil {
		return nil, err
	}

	movements := make([]model.Movement, 0, len(cart))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range cart {
			if err := s.articleRepo.AdjustStock(tx, orgID, line.Article.ID, line.Quantity, userID); err != nil {
				return err
			}

			movement := model.Movement{
				OrgID:     orgID,
				Date:      date,
				Kind:      model.MovementStockIn,
				ArticleID: line.Article.ID,
				Quantity:  line.Quantity,
				UnitTTC:   line.LineUnitTTC(),
				Location:  req.Location,
			}
			if supplier != nil {
				movement.ContactID = &supplier.ID
				movement.ContactName = supplier.DisplayName()
			}
			movement.CreatedBy = userID
			movement.UpdatedBy = userID
			if err := s.movementRepo.Create(tx, &movement); err != nil {
				return err
			}
			movements = append(movements, movement)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastEvent(ws.Event{
			Type:    "stock_update",
			OrgID:   orgID.String(),
			Message: fmt.Sprintf("%s recorded a stock entry (%d lines)", userName, len(movements)),
		})
	}
	return movements, nil
}
