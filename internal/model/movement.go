package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementStockIn     MovementKind = "stock_in"
	MovementClientSale  MovementKind = "client_sale"
	MovementCounterSale MovementKind = "counter_sale"
)

// IsSale reports whether the kind decrements stock.
func (k MovementKind) IsSale() bool {
	return k == MovementClientSale || k == MovementCounterSale
}

// Movement is a single stock-affecting ledger line. Quantity is always
// positive; the kind decides the stock direction (sales decrement, stock-in
// increments). UnitTTC and ContactName are snapshots taken at write time so
// invoices keep rendering correctly after catalog or contact edits.
type Movement struct {
	BaseModel
	OrgID       uuid.UUID       `gorm:"type:uuid;index;not null" json:"org_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Kind        MovementKind    `gorm:"type:varchar(20);not null" json:"kind" validate:"required,oneof=stock_in client_sale counter_sale"`
	ArticleID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"article_id" validate:"uuid_required"`
	Article     *Article        `gorm:"foreignKey:ArticleID" json:"article,omitempty" validate:"-"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity"`
	ContactID   *uuid.UUID      `gorm:"type:uuid;index" json:"contact_id,omitempty"`
	Reference   string          `gorm:"type:varchar(50);index" json:"reference"` // Invoice reference, empty for stock-in
	Payment     string          `gorm:"type:varchar(30)" json:"payment"`
	UnitTTC     decimal.Decimal `gorm:"type:numeric(14,4);default:0" json:"unit_ttc"`
	Location    string          `gorm:"type:varchar(100)" json:"location"`
	ContactName string          `gorm:"type:varchar(255)" json:"contact_name"`
}
