package model

import "github.com/google/uuid"

type CategoryKind string

const (
	CategoryProduct  CategoryKind = "product"
	CategoryPurchase CategoryKind = "purchase"
)

// Category labels either articles (product) or purchases (purchase).
type Category struct {
	BaseModel
	OrgID uuid.UUID    `gorm:"type:uuid;index;not null" json:"org_id"`
	Label string       `gorm:"type:varchar(100);not null" json:"label" validate:"required"`
	Kind  CategoryKind `gorm:"type:varchar(10);not null" json:"kind" validate:"required,oneof=product purchase"`
}
