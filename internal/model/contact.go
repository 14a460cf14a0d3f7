package model

import "github.com/google/uuid"

type ContactKind string

const (
	ContactClient   ContactKind = "client"
	ContactSupplier ContactKind = "supplier"
)

// Contact is a client or supplier. Each organization has one distinguished
// client flagged Counter that walk-in sales are attached to.
type Contact struct {
	BaseModel
	OrgID      uuid.UUID   `gorm:"type:uuid;index;not null" json:"org_id"`
	Kind       ContactKind `gorm:"type:varchar(10);not null" json:"kind" validate:"required,oneof=client supplier"`
	Company    string      `gorm:"type:varchar(255)" json:"company"`
	FirstName  string      `gorm:"type:varchar(100)" json:"first_name"`
	LastName   string      `gorm:"type:varchar(100)" json:"last_name"`
	Address    string      `gorm:"type:varchar(255)" json:"address"`
	PostalCode string      `gorm:"type:varchar(20)" json:"postal_code"`
	City       string      `gorm:"type:varchar(100)" json:"city"`
	Country    string      `gorm:"type:varchar(100)" json:"country"`
	TaxID      string      `gorm:"type:varchar(50)" json:"tax_id"`
	Email      string      `gorm:"type:varchar(255)" json:"email"`
	Phone      string      `gorm:"type:varchar(30)" json:"phone"`
	Counter    bool        `gorm:"default:false" json:"counter"`
}

// DisplayName returns the company name, falling back to "First Last".
func (c *Contact) DisplayName() string {
	if c.Company != "" {
		return c.Company
	}
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}
	return name
}
