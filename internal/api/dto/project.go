package dto

import (
	"strings"
	"time"

	"github.com/hugh/taskhub/internal/database/models"
)

type CreateProjectRequest struct {
	Name     string `json:"name"`
	TenantID string `json:"tenantId"`
}

func (r CreateProjectRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "Project name is required"
	}
	if r.TenantID == "" {
		errors["tenantId"] = "Tenant ID is required"
	}

	return errors
}

type ProjectDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewProjectDTO(p *models.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID.String(),
		Name:      p.Name,
		TenantID:  p.TenantID.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type CreateProjectResponse struct {
	Message string     `json:"message"`
	Project ProjectDTO `json:"project"`
}
