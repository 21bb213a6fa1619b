package dto

import (
	"strings"
	"time"

	"github.com/hugh/taskhub/internal/api/validation"
	"github.com/hugh/taskhub/internal/database/models"
)

type CreateTenantRequest struct {
	Name   string  `json:"name"`
	Domain *string `json:"domain,omitempty"`
	Plan   string  `json:"plan,omitempty"`
}

func (r CreateTenantRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "Tenant name is required"
	}
	if r.Domain != nil && *r.Domain != "" && !validation.IsValidDomain(*r.Domain) {
		errors["domain"] = "Domain is invalid"
	}
	if r.Plan != "" && !models.Plan(r.Plan).Valid() {
		errors["plan"] = "Plan must be one of: FREE, PREMIUM, ENTERPRISE"
	}

	return errors
}

type JoinTenantRequest struct {
	TenantID string `json:"tenantId"`
}

func (r JoinTenantRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.TenantID == "" {
		errors["tenantId"] = "Tenant ID is required to join"
	}

	return errors
}

type TenantDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Domain    *string     `json:"domain"`
	Plan      models.Plan `json:"plan"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewTenantDTO(t *models.Tenant) TenantDTO {
	return TenantDTO{
		ID:        t.ID.String(),
		Name:      t.Name,
		Domain:    t.Domain,
		Plan:      t.Plan,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// MyTenantDTO is a tenant listed for one of its members.
type MyTenantDTO struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Domain *string     `json:"domain"`
	Plan   models.Plan `json:"plan"`
	Role   models.Role `json:"role"`
}

type MyTenantsResponse struct {
	Message string        `json:"message"`
	Tenants []MyTenantDTO `json:"tenants"`
}

type CreateTenantResponse struct {
	Message  string    `json:"message"`
	TenantID string    `json:"tenantId"`
	Tenant   TenantDTO `json:"tenant"`
}

type MembershipDTO struct {
	ID        string      `json:"id"`
	TenantID  string      `json:"tenantId"`
	UserID    string      `json:"userId"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewMembershipDTO(m *models.Membership) MembershipDTO {
	return MembershipDTO{
		ID:        m.ID.String(),
		TenantID:  m.TenantID.String(),
		UserID:    m.UserID.String(),
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type JoinTenantResponse struct {
	Message    string        `json:"message"`
	TenantID   string        `json:"tenantId"`
	Membership MembershipDTO `json:"membership"`
}
