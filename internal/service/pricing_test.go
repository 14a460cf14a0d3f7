package service

import (
	"testing"

	"inventix/internal/model"

	"github.com/shopspring/decimal"
)

func TestSaleHT(t *testing.T) {
	got := SaleHT(decimal.NewFromInt(10), decimal.NewFromInt(30))
	if !got.Equal(decimal.NewFromInt(13)) {
		t.Fatalf("SaleHT(10, 30%%) = %s, want 13", got)
	}
}

func TestSaleTTC(t *testing.T) {
	ht := SaleHT(decimal.NewFromInt(10), decimal.NewFromInt(30))
	got := SaleTTC(ht, decimal.NewFromInt(20))
	if !got.Equal(decimal.RequireFromString("15.6")) {
		t.Fatalf("SaleTTC(13, 20%%) = %s, want 15.6", got)
	}
}

func TestUnitHTInvertsSaleTTC(t *testing.T) {
	vat := decimal.NewFromInt(20)
	ttc := decimal.RequireFromString("18")
	ht := UnitHT(ttc, vat)
	if !ht.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("UnitHT(18, 20%%) = %s, want 15", ht)
	}
}

func TestArticleSaleTTC(t *testing.T) {
	article := &model.Article{
		PurchasePrice: decimal.NewFromInt(10),
		MarginPct:     decimal.NewFromInt(50),
		VATPct:        decimal.NewFromInt(20),
	}
	// 10 × 1.5 × 1.2 = 18
	if got := ArticleSaleTTC(article); !got.Equal(decimal.NewFromInt(18)) {
		t.Fatalf("ArticleSaleTTC = %s, want 18", got)
	}
}

func TestRoundCents(t *testing.T) {
	got := RoundCents(decimal.RequireFromString("35.2848"))
	if got.String() != "35.28" {
		t.Fatalf("RoundCents = %s, want 35.28", got)
	}
}
