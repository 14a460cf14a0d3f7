package service

import (
	"inventix/internal/model"

	"github.com/shopspring/decimal"
)

// CartLine is one article line of a sale in progress. UnitTTC overrides the
// catalog price when set; otherwise the price is derived from the article.
type CartLine struct {
	Article  *model.Article
	Quantity decimal.Decimal
	UnitTTC  *decimal.Decimal
}

// LineUnitTTC resolves the effective tax-inclusive unit price.
func (l CartLine) LineUnitTTC() decimal.Decimal {
	if l.UnitTTC != nil {
		return *l.UnitTTC
	}
	return ArticleSaleTTC(l.Article)
}

// CartTotals is the result of a cart computation. Total = TotalHT + TotalVAT
// − Discount, where Discount is non-zero only for the organization's
// discounted payment method.
type CartTotals struct {
	TotalHT  decimal.Decimal `json:"total_ht"`
	TotalVAT decimal.Decimal `json:"total_vat"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeCartTotals sums the cart. Each line contributes
// unitHT = unitTTC/(1+vat/100), lineHT = unitHT×qty, lineVAT = lineHT×vat/100.
// When payment equals discountMethod a flat discountPct of (HT+VAT) comes off
// the total. The flat-discount-for-one-method rule is a business rule carried
// over verbatim from the shop's accounting practice.
func ComputeCartTotals(lines []CartLine, payment, discountMethod string, discountPct decimal.Decimal) CartTotals {
	totalHT := decimal.Zero
	totalVAT := decimal.Zero

	for _, line := range lines {
		unitHT := UnitHT(line.LineUnitTTC(), line.Article.VATPct)
		lineHT := unitHT.Mul(line.Quantity)
		totalHT = totalHT.Add(lineHT)
		totalVAT = totalVAT.Add(lineHT.Mul(line.Article.VATPct).Div(hundred))
	}

	gross := totalHT.Add(totalVAT)
	discount := decimal.Zero
	if payment != "" && payment == discountMethod && discountPct.IsPositive() {
		discount = gross.Mul(discountPct).Div(hundred)
	}

	return CartTotals{
		TotalHT:  totalHT,
		TotalVAT: totalVAT,
		Discount: discount,
		Total:    gross.Sub(discount),
	}
}
