package service

import (
	"testing"

	"inventix/internal/model"

	"github.com/shopspring/decimal"
)

func testArticle(purchase, margin, vat int64) *model.Article {
	return &model.Article{
		PurchasePrice: decimal.NewFromInt(purchase),
		MarginPct:     decimal.NewFromInt(margin),
		VATPct:        decimal.NewFromInt(vat),
	}
}

func TestComputeCartTotalsNoDiscount(t *testing.T) {
	// Catalog TTC = 10 × 1.5 × 1.2 = 18; qty 2 → HT 30, VAT 6.
	lines := []CartLine{{Article: testArticle(10, 50, 20), Quantity: decimal.NewFromInt(2)}}

	totals := ComputeCartTotals(lines, model.PaymentCard, model.PaymentCash, decimal.NewFromInt(2))
	if !totals.TotalHT.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("TotalHT = %s, want 30", totals.TotalHT)
	}
	if !totals.TotalVAT.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("TotalVAT = %s, want 6", totals.TotalVAT)
	}
	if !totals.Discount.IsZero() {
		t.Fatalf("Discount = %s, want 0 for non-discounted method", totals.Discount)
	}
	if !totals.Total.Equal(decimal.NewFromInt(36)) {
		t.Fatalf("Total = %s, want 36", totals.Total)
	}
}

func TestComputeCartTotalsCashDiscount(t *testing.T) {
	lines := []CartLine{{Article: testArticle(10, 50, 20), Quantity: decimal.NewFromInt(2)}}

	totals := ComputeCartTotals(lines, model.PaymentCash, model.PaymentCash, decimal.NewFromInt(2))
	// 2% of 36 = 0.72
	if !totals.Discount.Equal(decimal.RequireFromString("0.72")) {
		t.Fatalf("Discount = %s, want 0.72", totals.Discount)
	}
	if !totals.Total.Equal(decimal.RequireFromString("35.28")) {
		t.Fatalf("Total = %s, want 35.28", totals.Total)
	}
}

func TestComputeCartTotalsOverriddenPrice(t *testing.T) {
	override := decimal.NewFromInt(12)
	lines := []CartLine{{Article: testArticle(10, 50, 20), Quantity: decimal.NewFromInt(1), UnitTTC: &override}}

	totals := ComputeCartTotals(lines, model.PaymentCard, model.PaymentCash, decimal.NewFromInt(2))
	// unitHT = 12/1.2 = 10; VAT = 2.
	if !totals.TotalHT.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("TotalHT = %s, want 10", totals.TotalHT)
	}
	if !totals.Total.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("Total = %s, want 12", totals.Total)
	}
}

func TestComputeCartTotalsSumProperty(t *testing.T) {
	lines := []CartLine{
		{Article: testArticle(10, 50, 20), Quantity: decimal.NewFromInt(3)},
		{Article: testArticle(7, 30, 10), Quantity: decimal.NewFromInt(2)},
	}
	for _, payment := range []string{model.PaymentCash, model.PaymentCard, model.PaymentCheque} {
		totals := ComputeCartTotals(lines, payment, model.PaymentCash, decimal.NewFromInt(2))
		want := totals.TotalHT.Add(totals.TotalVAT).Sub(totals.Discount)
		if !totals.Total.Equal(want) {
			t.Fatalf("payment %s: Total = %s, want HT+VAT-discount = %s", payment, totals.Total, want)
		}
		if payment == model.PaymentCash {
			gross := totals.TotalHT.Add(totals.TotalVAT)
			if !totals.Discount.Equal(gross.Mul(decimal.NewFromInt(2)).Div(decimal.NewFromInt(100))) {
				t.Fatalf("cash discount = %s, want 2%% of %s", totals.Discount, gross)
			}
		} else if !totals.Discount.IsZero() {
			t.Fatalf("payment %s: unexpected discount %s", payment, totals.Discount)
		}
	}
}
