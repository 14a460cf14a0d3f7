package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Article is a catalog product with pricing and running stock.
//
// SaleTTC is a display cache refreshed on create/update; the authoritative
// sale price is always re-derived from PurchasePrice, MarginPct and VATPct.
// Stock is adjusted only through movements.
type Article struct {
	BaseModel
	OrgID         uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_articles_org_code;not null" json:"org_id"`
	Code          string          `gorm:"type:varchar(50);uniqueIndex:idx_articles_org_code;not null" json:"code" validate:"required"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description   string          `gorm:"type:text" json:"description"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageURL      string          `gorm:"type:varchar(512)" json:"image_url"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(14,4);default:0" json:"purchase_price"`
	MarginPct     decimal.Decimal `gorm:"type:numeric(8,4);default:0" json:"margin_pct"`
	VATPct        decimal.Decimal `gorm:"type:numeric(6,3);default:0" json:"vat_pct"`
	SaleTTC       decimal.Decimal `gorm:"type:numeric(14,4);default:0" json:"sale_ttc"`
	Stock         decimal.Decimal `gorm:"type:numeric(14,3);default:0" json:"stock"`
	Location      string          `gorm:"type:varchar(100)" json:"location"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit"`
	Packaging     string          `gorm:"type:varchar(50)" json:"packaging"`
}
