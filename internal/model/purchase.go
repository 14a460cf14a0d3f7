package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is an expense line against a supplier (goods bought in, rent,
// services). Feeds the dashboard net result.
type Purchase struct {
	BaseModel
	OrgID        uuid.UUID       `gorm:"type:uuid;index;not null" json:"org_id"`
	Reference    string          `gorm:"type:varchar(50)" json:"reference"`
	Date         time.Time       `gorm:"not null" json:"date" validate:"required"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	PaymentDate  *time.Time      `json:"payment_date,omitempty"`
	SupplierID   *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier     *Contact        `gorm:"foreignKey:SupplierID" json:"supplier,omitempty" validate:"-"`
	Payment      string          `gorm:"type:varchar(30)" json:"payment"`
	AmountHT     decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"amount_ht"`
	AmountTTC    decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"amount_ttc"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category     *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
	Description  string          `gorm:"type:text" json:"description"`
}
