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

type TaskHandler struct {
	service *tenancy.Service
	logger  *slog.Logger
}

func NewTaskHandler(service *tenancy.Service, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Project ID and title are required", Details: errors})
		return
	}

	task, err := h.service.CreateTask(r.Context(), middleware.GetUserID(r.Context()), tenancy.CreateTaskInput{
		ProjectID:   validation.ParseID(req.ProjectID),
		Title:       validation.SanitizeString(req.Title),
		Description: validation.SanitizeOptional(req.Description),
		Status:      nonBlank(req.Status),
		AssigneeID:  validation.OptionalID(req.AssigneeID),
	})
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateTaskResponse{
		Message: "Task created successfully",
		Task:    dto.NewTaskDTO(task),
	})
}

// List returns the project's tasks, newest first, with assignees attached.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID := validation.ParseID(chi.URLParam(r, "projectId"))

	tasks, err := h.service.ListTasks(r.Context(), middleware.GetUserID(r.Context()), projectID)
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to fetch tasks")
		return
	}

	resp := make([]dto.TaskDTO, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, dto.NewTaskDTO(&tasks[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update applies a partial update; omitted fields keep their values.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID := validation.ParseID(chi.URLParam(r, "taskId"))

	var req dto.UpdateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Validation failed", Details: errors})
		return
	}

	patch := tenancy.TaskPatch{
		Description: validation.SanitizeOptional(req.Description),
		Status:      nonBlank(req.Status),
		AssigneeID:  validation.OptionalID(req.AssigneeID),
	}
	if req.Title != nil {
		title := validation.SanitizeString(*req.Title)
		patch.Title = &title
	}

	task, err := h.service.UpdateTask(r.Context(), middleware.GetUserID(r.Context()), taskID, patch)
	if err != nil {
		writeTenancyError(w, r, h.logger, err, "Failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, dto.UpdateTaskResponse{
		Message:     "Task updated successfully",
		UpdatedTask: dto.NewTaskDTO(task),
	})
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := validation.SanitizeString(*s)
	if v == "" {
		return nil
	}
	return &v
}
