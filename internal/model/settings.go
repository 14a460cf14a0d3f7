package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settings is the single per-organization record holding the company identity
// printed on invoices, plus the payment-method discount rule applied to carts.
type Settings struct {
	BaseModel
	OrgID       uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"org_id"`
	CompanyName string          `gorm:"type:varchar(255)" json:"company_name"`
	Address     string          `gorm:"type:varchar(255)" json:"address"`
	PostalCode  string          `gorm:"type:varchar(20)" json:"postal_code"`
	City        string          `gorm:"type:varchar(100)" json:"city"`
	VATNumber   string          `gorm:"type:varchar(50)" json:"vat_number"`
	IBAN        string          `gorm:"type:varchar(50)" json:"iban"`
	Email       string          `gorm:"type:varchar(255)" json:"email"`
	Phone       string          `gorm:"type:varchar(30)" json:"phone"`
	Website     string          `gorm:"type:varchar(255)" json:"website"`
	LogoURL     string          `gorm:"type:varchar(512)" json:"logo_url"`

	// Flat discount applied to cart totals when paying with DiscountMethod.
	DiscountMethod string          `gorm:"type:varchar(30);default:'cash'" json:"discount_method"`
	DiscountPct    decimal.Decimal `gorm:"type:numeric(6,3);default:2" json:"discount_pct"`
}

// DefaultSettings returns the settings created for a fresh organization.
func DefaultSettings(orgID uuid.UUID) *Settings {
	return &Settings{
		OrgID:          orgID,
		DiscountMethod: PaymentCash,
		DiscountPct:    decimal.NewFromInt(2),
	}
}
