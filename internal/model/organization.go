package model

import "github.com/google/uuid"

// Organization is the unit of data isolation. Every domain row carries the
// organization's id and is only ever read or written through it.
type Organization struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
}

// OrgMember links a user to an organization.
type OrgMember struct {
	BaseModel
	OrgID        uuid.UUID    `gorm:"type:uuid;index:idx_org_user,unique;not null" json:"org_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;index:idx_org_user,unique;not null" json:"user_id"`
	Role         string       `gorm:"type:varchar(20);default:'member'" json:"role"` // member, owner
	Organization Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
}

const (
	OrgRoleOwner  = "owner"
	OrgRoleMember = "member"
)

// OrgRequest statuses.
const (
	OrgRequestPending  = "pending"
	OrgRequestApproved = "approved"
	OrgRequestRejected = "rejected"
)

// OrgRequest is a tenant-creation request awaiting manual admin action.
// Approval creates the Organization and an owner membership for the requester.
type OrgRequest struct {
	BaseModel
	Name           string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	RequesterID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"requester_id"`
	RequesterEmail string     `gorm:"type:varchar(255);not null" json:"requester_email"`
	Status         string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	OrgID          *uuid.UUID `gorm:"type:uuid" json:"org_id,omitempty"` // Set on approval
}
