package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods. The cash method carries a flat discount on cart totals,
// see service.CartTotals.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentCheque   = "cheque"
	PaymentTransfer = "transfer"
)

// Invoice is the summary row grouping the movements that share its reference.
// ClientName is a snapshot; the client contact may be edited or deleted later.
type Invoice struct {
	BaseModel
	OrgID      uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_invoices_org_ref;not null" json:"org_id"`
	Reference  string          `gorm:"type:varchar(50);uniqueIndex:idx_invoices_org_ref;not null" json:"reference" validate:"required"`
	Date       time.Time       `gorm:"not null" json:"date"`
	ClientID   *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	ClientName string          `gorm:"type:varchar(255)" json:"client_name"`
	Payment    string          `gorm:"type:varchar(30)" json:"payment"`
	TotalTTC   decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"total_ttc"`
	Location   string          `gorm:"type:varchar(100)" json:"location"`
	Comment    string          `gorm:"type:text" json:"comment"`
}
