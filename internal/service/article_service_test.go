package service

import (
	"testing"

	"inventix/internal/model"
	"inventix/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newArticleService(db *gorm.DB) ArticleService {
	return NewArticleService(repository.NewArticleRepo(db), repository.NewMovementRepo(db))
}

func TestDeleteArticleWithoutMovements(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 10)
	svc := newArticleService(db)

	if err := svc.Delete(orgID, article.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(orgID, article.ID); err == nil {
		t.Fatal("deleted article must not be found")
	}
}

func TestDeleteArticleReferencedByInvoice(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 10)
	client := seedClient(t, db, orgID, "ACME")
	articles := newArticleService(db)

	invoice := recordSaleFixture(t, db, orgID, &SaleRequest{
		Kind:     model.MovementClientSale,
		ClientID: &client.ID,
		Date:     "05/03/2024",
		Payment:  model.PaymentCard,
		Lines:    []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(2)}},
	})

	// The ledger still references the article, so deletion is refused and
	// the invoice stays editable.
	if err := articles.Delete(orgID, article.ID); err != ErrArticleInUse {
		t.Fatalf("expected ErrArticleInUse, got %v", err)
	}
	invoices := newInvoiceService(db)
	if err := invoices.Delete(orgID, invoice.Reference, "tester", "Tester"); err != nil {
		t.Fatalf("invoice delete must keep working: %v", err)
	}
	if got := articleStock(t, db, article.ID); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("stock after invoice delete = %s, want 10", got)
	}

	// With the invoice gone the article is no longer referenced.
	if err := articles.Delete(orgID, article.ID); err != nil {
		t.Fatalf("Delete after invoice removal: %v", err)
	}
}
