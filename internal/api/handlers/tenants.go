package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hugh/taskhub/internal/api/dto"
	"github.com/hugh/taskhub/internal/api/middleware"
	"github.com/hugh/taskhub/internal/api/validation"
	"github.com/hugh/taskhub/internal/database/models"
	"github.com/hugh/taskhub/internal/tenancy"
)

type TenantHandler struct {
	service *tenancy.Service
	logger  *slog.Logger
}

func NewTenantHandler(service *tenancy.Service, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{service: service, logger: logger}
}

// My lists the caller's tenants with the caller's role in each.
func (h *TenantHandler) My(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.service.MyTenants(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to fetch tenants")
		return
	}

	tenants := make([]dto.MyTenantDTO, 0, len(memberships))
	for _, m := range memberships {
		tenants = append(tenants, dto.MyTenantDTO{
			ID:     m.Tenant.ID.String(),
			Name:   m.Tenant.Name,
			Domain: m.Tenant.Domain,
			Plan:   m.Tenant.Plan,
			Role:   m.Role,
		})
	}

	writeJSON(w, http.StatusOK, dto.MyTenantsResponse{
		Message: "Your tenants",
		Tenants: tenants,
	})
}

func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTenantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: firstOf(errors, "name"), Details: errors})
		return
	}

	var domain *string
	if req.Domain != nil && *req.Domain != "" {
		domain = validation.SanitizeOptional(req.Domain)
	}

	tenant, _, err := h.service.CreateTenant(r.Context(), middleware.GetUserID(r.Context()), tenancy.CreateTenantInput{
		Name:   validation.SanitizeString(req.Name),
		Domain: domain,
		Plan:   models.Plan(req.Plan),
	})
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to create tenant")
		return
	}

	writeJSON(w, http.StatusOK, dto.CreateTenantResponse{
		Message:  "Tenant created successfully. You are now ADMIN.",
		TenantID: tenant.ID.String(),
		Tenant:   dto.NewTenantDTO(tenant),
	})
}

func (h *TenantHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinTenantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: errors["tenantId"], Details: errors})
		return
	}

	tenant, membership, err := h.service.JoinTenant(r.Context(), middleware.GetUserID(r.Context()), validation.ParseID(req.TenantID))
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to join tenant")
		return
	}

	writeJSON(w, http.StatusCreated, dto.JoinTenantResponse{
		Message:    fmt.Sprintf("Successfully joined tenant: %s", tenant.Name),
		TenantID:   tenant.ID.String(),
		Membership: dto.NewMembershipDTO(membership),
	})
}

// firstOf returns the message for the preferred field, or any message when
// that field is valid.
func firstOf(errors map[string]string, preferred string) string {
	if msg, ok := errors[preferred]; ok {
		return msg
	}
	for _, msg := range errors {
		return msg
	}
	return "Validation failed"
}
