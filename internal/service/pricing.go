package service

import (
	"inventix/internal/model"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// SaleHT derives the pre-tax sale price from cost and margin.
// saleHT = purchase × (1 + margin/100)
func SaleHT(purchasePrice, marginPct decimal.Decimal) decimal.Decimal {
	return purchasePrice.Mul(one.Add(marginPct.Div(hundred)))
}

// SaleTTC derives the tax-inclusive sale price.
// saleTTC = saleHT × (1 + vat/100)
func SaleTTC(saleHT, vatPct decimal.Decimal) decimal.Decimal {
	return saleHT.Mul(one.Add(vatPct.Div(hundred)))
}

// UnitHT strips VAT from a tax-inclusive unit price.
func UnitHT(unitTTC, vatPct decimal.Decimal) decimal.Decimal {
	return unitTTC.Div(one.Add(vatPct.Div(hundred)))
}

// ArticleSaleTTC recomputes the article's catalog price from its stored cost,
// margin and VAT rate. The persisted SaleTTC column is only a display cache.
func ArticleSaleTTC(a *model.Article) decimal.Decimal {
	return SaleTTC(SaleHT(a.PurchasePrice, a.MarginPct), a.VATPct)
}

// RoundCents rounds to two decimals. Applied at serialization boundaries
// only; intermediate math keeps full precision.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
