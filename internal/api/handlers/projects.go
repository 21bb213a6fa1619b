package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hugh/taskhub/internal/api/dto"
	"github.com/hugh/taskhub/internal/api/middleware"
	"github.com/hugh/taskhub/internal/api/validation"
	"github.com/hugh/taskhub/internal/tenancy"
)

type ProjectHandler struct {
	service *tenancy.Service
	logger  *slog.Logger
}

func NewProjectHandler(service *tenancy.Service, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, logger: logger}
}

// Create requires the caller to be an ADMIN of the tenant.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Tenant ID and Project name are required", Details: errors})
		return
	}

	project, err := h.service.CreateProject(r.Context(),
		middleware.GetUserID(r.Context()),
		validation.ParseID(req.TenantID),
		validation.SanitizeString(req.Name),
	)
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to create project")
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateProjectResponse{
		Message: "Project created successfully",
		Project: dto.NewProjectDTO(project),
	})
}

// List returns the tenant's projects, newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := validation.ParseID(chi.URLParam(r, "tenantId"))

	projects, err := h.service.ListProjects(r.Context(), middleware.GetUserID(r.Context()), tenantID)
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to fetch projects")
		return
	}

	resp := make([]dto.ProjectDTO, 0, len(projects))
	for i := range projects {
		resp = append(resp, dto.NewProjectDTO(&projects[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
