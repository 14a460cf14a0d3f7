package service

import (
	"errors"
	"testing"

	"inventix/internal/model"
	"inventix/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) SaleService {
	return NewSaleService(
		repository.NewArticleRepo(db),
		repository.NewMovementRepo(db),
		repository.NewInvoiceRepo(db),
		repository.NewContactRepo(db),
		repository.NewSettingsRepo(db),
		db,
		nil,
	)
}

func TestRecordSaleDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 10)
	client := seedClient(t, db, orgID, "ACME")
	svc := newSaleService(db)

	req := &SaleRequest{
		Kind:     model.MovementClientSale,
		ClientID: &client.ID,
		Date:     "05/03/2024",
		Payment:  model.PaymentCard,
		Lines:    []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(3)}},
	}
	invoice, err := svc.RecordSale(orgID, req, "tester", "Tester")
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if invoice.Reference == "" {
		t.Fatal("expected an invoice reference")
	}
	if got := articleStock(t, db, article.ID); !got.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("stock after sale = %s, want 7", got)
	}
	// TTC 18 × 3 = 54, card payment so no discount.
	if !invoice.TotalTTC.Equal(decimal.NewFromInt(54)) {
		t.Fatalf("invoice total = %s, want 54", invoice.TotalTTC)
	}
	if invoice.ClientName != "ACME" {
		t.Fatalf("client name = %q, want ACME", invoice.ClientName)
	}
}

func TestRecordSaleCashDiscount(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 10)
	client := seedClient(t, db, orgID, "ACME")
	svc := newSaleService(db)

	req := &SaleRequest{
		Kind:     model.MovementClientSale,
		ClientID: &client.ID,
		Date:     "05/03/2024",
		Payment:  model.PaymentCash,
		Lines:    []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(2)}},
	}
	invoice, err := svc.RecordSale(orgID, req, "tester", "Tester")
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	// Gross 36, minus the 2% cash discount.
	if !invoice.TotalTTC.Equal(decimal.RequireFromString("35.28")) {
		t.Fatalf("invoice total = %s, want 35.28", invoice.TotalTTC)
	}
}

func TestRecordCounterSaleUsesCounterContact(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 5)
	svc := newSaleService(db)

	req := &SaleRequest{
		Kind:    model.MovementCounterSale,
		Date:    "2024-03-05",
		Payment: model.PaymentCash,
		Lines:   []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(1)}},
	}
	invoice, err := svc.RecordSale(orgID, req, "tester", "Tester")
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if invoice.ClientName != "Vente comptoir" {
		t.Fatalf("client name = %q, want counter contact", invoice.ClientName)
	}
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	cheap := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 10)
	scarce := seedArticle(t, db, orgID, "ART-2", 5, 30, 20, 1)
	client := seedClient(t, db, orgID, "ACME")
	svc := newSaleService(db)

	req := &SaleRequest{
		Kind:     model.MovementClientSale,
		ClientID: &client.ID,
		Date:     "05/03/2024",
		Payment:  model.PaymentCard,
		Lines: []LineRequest{
			{ArticleID: cheap.ID, Quantity: decimal.NewFromInt(2)},
			{ArticleID: scarce.ID, Quantity: decimal.NewFromInt(3)},
		},
	}
	if _, err := svc.RecordSale(orgID, req, "tester", "Tester"); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	// The whole transaction must roll back, including the first line.
	if got := articleStock(t, db, cheap.ID); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("stock after failed sale = %s, want 10", got)
	}
	var count int64
	db.Model(&model.Invoice{}).Where("org_id = ?", orgID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no invoice rows, got %d", count)
	}
}

func TestRecordSaleValidation(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 10)
	svc := newSaleService(db)

	// A client sale without a client is rejected.
	req := &SaleRequest{
		Kind:    model.MovementClientSale,
		Date:    "05/03/2024",
		Payment: model.PaymentCard,
		Lines:   []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(1)}},
	}
	if _, err := svc.RecordSale(orgID, req, "tester", "Tester"); err != ErrClientRequired {
		t.Fatalf("expected ErrClientRequired, got %v", err)
	}

	// Empty carts and non-positive quantities are rejected too.
	req.Kind = model.MovementCounterSale
	req.Lines = nil
	if _, err := svc.RecordSale(orgID, req, "tester", "Tester"); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	req.Lines = []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(-1)}}
	if _, err := svc.RecordSale(orgID, req, "tester", "Tester"); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestInvoiceReferencesAreSequential(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 100)
	svc := newSaleService(db)

	var refs []string
	for i := 0; i < 3; i++ {
		req := &SaleRequest{
			Kind:    model.MovementCounterSale,
			Date:    "05/03/2024",
			Payment: model.PaymentCash,
			Lines:   []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(1)}},
		}
		invoice, err := svc.RecordSale(orgID, req, "tester", "Tester")
		if err != nil {
			t.Fatalf("sale %d: %v", i, err)
		}
		refs = append(refs, invoice.Reference)
	}
	for i := 1; i < len(refs); i++ {
		if refs[i] == refs[i-1] {
			t.Fatalf("duplicate reference %q", refs[i])
		}
	}
}

func TestRecordStockEntry(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 4)
	svc := newSaleService(db)

	req := &StockEntryRequest{
		Date:  "05/03/2024",
		Lines: []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(6)}},
	}
	movements, err := svc.RecordStockEntry(orgID, req, "tester", "Tester")
	if err != nil {
		t.Fatalf("RecordStockEntry: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("got %d movements, want 1", len(movements))
	}
	if movements[0].Kind != model.MovementStockIn {
		t.Fatalf("kind = %s, want stock_in", movements[0].Kind)
	}
	if got := articleStock(t, db, article.ID); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("stock after entry = %s, want 10", got)
	}
}

func TestSalesAreOrgScoped(t *testing.T) {
	db := setupTestDB(t)
	orgA := seedOrg(t, db)
	orgB := seedOrg(t, db)
	article := seedArticle(t, db, orgA, "ART-1", 10, 50, 20, 10)
	svc := newSaleService(db)

	req := &SaleRequest{
		Kind:    model.MovementCounterSale,
		Date:    "05/03/2024",
		Payment: model.PaymentCash,
		Lines:   []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(1)}},
	}
	if _, err := svc.RecordSale(orgB, req, "tester", "Tester"); err != ErrArticleNotFound {
		t.Fatalf("expected ErrArticleNotFound for foreign article, got %v", err)
	}
}
