package service

import (
	"testing"
	"time"

	"inventix/internal/model"
	"inventix/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) DashboardService {
	return NewDashboardService(repository.NewMovementRepo(db), repository.NewPurchaseRepo(db))
}

func TestDashboardSummary(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	// TTC 18, purchase 10.
	a1 := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 100)
	// TTC 5 × 1.4 × 1.1 = 7.7, purchase 5.
	a2 := seedArticle(t, db, orgID, "ART-2", 5, 40, 10, 100)
	client := seedClient(t, db, orgID, "ACME")
	svc := newSaleService(db)

	sell := func(date string, lines []LineRequest) {
		t.Helper()
		if _, err := svc.RecordSale(orgID, &SaleRequest{
			Kind:     model.MovementClientSale,
			ClientID: &client.ID,
			Date:     date,
			Payment:  model.PaymentCard,
			Lines:    lines,
		}, "tester", "Tester"); err != nil {
			t.Fatalf("sale fixture: %v", err)
		}
	}
	sell("10/03/2024", []LineRequest{{ArticleID: a1.ID, Quantity: decimal.NewFromInt(2)}})
	sell("20/03/2024", []LineRequest{
		{ArticleID: a1.ID, Quantity: decimal.NewFromInt(1)},
		{ArticleID: a2.ID, Quantity: decimal.NewFromInt(4)},
	})
	// Outside the queried month, must be ignored.
	sell("05/04/2024", []LineRequest{{ArticleID: a1.ID, Quantity: decimal.NewFromInt(5)}})

	purchase := model.Purchase{
		OrgID:     orgID,
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		AmountHT:  decimal.NewFromInt(50),
		AmountTTC: decimal.NewFromInt(60),
	}
	if err := db.Create(&purchase).Error; err != nil {
		t.Fatalf("seed purchase: %v", err)
	}

	summary, err := newDashboardService(db).Summary(orgID, 2024, 3)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	// Sales: 3×18 + 4×7.7 = 84.8
	if !summary.SalesTTC.Equal(decimal.RequireFromString("84.8")) {
		t.Fatalf("SalesTTC = %s, want 84.8", summary.SalesTTC)
	}
	// COGS: 3×10 + 4×5 = 50
	if !summary.COGS.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("COGS = %s, want 50", summary.COGS)
	}
	if !summary.PurchasesTTC.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("PurchasesTTC = %s, want 60", summary.PurchasesTTC)
	}
	// Gross margin 34.8, net result 34.8 − 60 = −25.2
	if !summary.GrossMargin.Equal(decimal.RequireFromString("34.8")) {
		t.Fatalf("GrossMargin = %s, want 34.8", summary.GrossMargin)
	}
	if !summary.NetResult.Equal(decimal.RequireFromString("-25.2")) {
		t.Fatalf("NetResult = %s, want -25.2", summary.NetResult)
	}

	if len(summary.TopArticles) != 2 {
		t.Fatalf("got %d top articles, want 2", len(summary.TopArticles))
	}
	// Ranked by quantity sold: a2 (4) before a1 (3).
	if summary.TopArticles[0].ArticleID != a2.ID {
		t.Fatalf("top article = %s, want ART-2", summary.TopArticles[0].Code)
	}
	if !summary.TopArticles[0].Quantity.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("top quantity = %s, want 4", summary.TopArticles[0].Quantity)
	}
}

func TestDashboardSummaryWholeYear(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)
	article := seedArticle(t, db, orgID, "ART-1", 10, 50, 20, 100)
	client := seedClient(t, db, orgID, "ACME")
	svc := newSaleService(db)

	for _, date := range []string{"10/01/2024", "10/06/2024", "10/12/2024"} {
		if _, err := svc.RecordSale(orgID, &SaleRequest{
			Kind:     model.MovementClientSale,
			ClientID: &client.ID,
			Date:     date,
			Payment:  model.PaymentCard,
			Lines:    []LineRequest{{ArticleID: article.ID, Quantity: decimal.NewFromInt(1)}},
		}, "tester", "Tester"); err != nil {
			t.Fatalf("sale fixture: %v", err)
		}
	}

	summary, err := newDashboardService(db).Summary(orgID, 2024, 0)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !summary.SalesTTC.Equal(decimal.NewFromInt(54)) {
		t.Fatalf("SalesTTC = %s, want 54", summary.SalesTTC)
	}
}

func TestDashboardSummaryEmptyPeriod(t *testing.T) {
	db := setupTestDB(t)
	orgID := seedOrg(t, db)

	summary, err := newDashboardService(db).Summary(orgID, 2020, 1)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !summary.SalesTTC.IsZero() || !summary.NetResult.IsZero() {
		t.Fatalf("expected zero summary, got sales %s net %s", summary.SalesTTC, summary.NetResult)
	}
	if len(summary.TopArticles) != 0 {
		t.Fatalf("expected no top articles, got %d", len(summary.TopArticles))
	}
}
