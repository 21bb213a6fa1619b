package models

import "github.com/google/uuid"

type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanPremium    Plan = "PREMIUM"
	PlanEnterprise Plan = "ENTERPRISE"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPremium, PlanEnterprise:
		return true
	}
	return false
}

type Tenant struct {
	Base
	Name   string  `gorm:"not null" json:"name"`
	Domain *string `json:"domain"` // not unique
	Plan   Plan    `gorm:"not null;default:'FREE'" json:"plan"`

	Memberships []Membership `gorm:"foreignKey:TenantID" json:"-"`
	Projects    []Project    `gorm:"foreignKey:TenantID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Membership grants a user a role within a tenant. At most one row exists
// per (tenant, user) pair.
type Membership struct {
	Base
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_tenant_user,priority:1" json:"tenantId"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_tenant_user,priority:2;index" json:"userId"`
	Role     Role      `gorm:"not null;default:'MEMBER'" json:"role"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   *User   `gorm:"foreignKey:UserID" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}
