package service

import (
	"fmt"
	"testing"

	"inventix/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.OrgMember{},
		&model.OrgRequest{},
		&model.Category{},
		&model.Contact{},
		&model.Article{},
		&model.Movement{},
		&model.Invoice{},
		&model.Purchase{},
		&model.Settings{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedOrg creates an organization with its counter contact and default
// settings, the state ApproveRequest leaves behind.
func seedOrg(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	org := model.Organization{Name: "Test Shop", Slug: "test-shop-" + uuid.New().String()[:8]}
	if err := db.Create(&org).Error; err != nil {
		t.Fatalf("seed org: %v", err)
	}
	counter := model.Contact{OrgID: org.ID, Kind: model.ContactClient, Company: "Vente comptoir", Counter: true}
	if err := db.Create(&counter).Error; err != nil {
		t.Fatalf("seed counter contact: %v", err)
	}
	if err := db.Create(model.DefaultSettings(org.ID)).Error; err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	return org.ID
}

func seedArticle(t *testing.T, db *gorm.DB, orgID uuid.UUID, code string, purchase, margin, vat, stock int64) *model.Article {
	t.Helper()
	article := model.Article{
		OrgID:         orgID,
		Code:          code,
		Name:          "Article " + code,
		PurchasePrice: decimal.NewFromInt(purchase),
		MarginPct:     decimal.NewFromInt(margin),
		VATPct:        decimal.NewFromInt(vat),
		Stock:         decimal.NewFromInt(stock),
	}
	article.SaleTTC = ArticleSaleTTC(&article)
	if err := db.Create(&article).Error; err != nil {
		t.Fatalf("seed article %s: %v", code, err)
	}
	return &article
}

func seedClient(t *testing.T, db *gorm.DB, orgID uuid.UUID, company string) *model.Contact {
	t.Helper()
	contact := model.Contact{OrgID: orgID, Kind: model.ContactClient, Company: company}
	if err := db.Create(&contact).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return &contact
}

func articleStock(t *testing.T, db *gorm.DB, id uuid.UUID) decimal.Decimal {
	t.Helper()
	var article model.Article
	if err := db.First(&article, "id = ?", id).Error; err != nil {
		t.Fatalf("reload article: %v", err)
	}
	return article.Stock
}
