package dto

import (
	"strings"
	"time"

	"github.com/hugh/taskhub/internal/database/models"
)

type CreateTaskRequest struct {
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

func (r CreateTaskRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.ProjectID == "" {
		errors["projectId"] = "Project ID is required"
	}
	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "Title is required"
	}

	return errors
}

// UpdateTaskRequest fields left out of the body are not changed.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
}

func (r UpdateTaskRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errors["title"] = "Title cannot be empty"
	}

	return errors
}

type TaskDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	ProjectID   string    `json:"projectId"`
	AssigneeID  *string   `json:"assigneeId"`
	Assignee    *UserDTO  `json:"assignee,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTaskDTO(t *models.Task) TaskDTO {
	resp := TaskDTO{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		ProjectID:   t.ProjectID.String(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssigneeID != nil {
		s := t.AssigneeID.String()
		resp.AssigneeID = &s
	}
	if t.Assignee != nil {
		assignee := NewUserDTO(t.Assignee)
		resp.Assignee = &assignee
	}
	return resp
}

type CreateTaskResponse struct {
	Message string  `json:"message"`
	Task    TaskDTO `json:"task"`
}

type UpdateTaskResponse struct {
	Message     string  `json:"message"`
	UpdatedTask TaskDTO `json:"updatedTask"`
}
