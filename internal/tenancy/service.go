package tenancy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hugh/taskhub/internal/database/models"
)

// Service implements tenant, project and task operations on behalf of an
// authenticated caller. Every project or task operation resolves the owning
// tenant first, reports a missing entity as not found, and only then
// consults the Gate.
type Service struct {
	repo   Repository
	gate   *Gate
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		gate:   NewGate(repo, logger),
		logger: logger,
	}
}

type CreateTenantInput struct {
	Name   string
	Domain *string
	Plan   models.Plan
}

// TenantWithRole is a tenant as seen by one of its members.
type TenantWithRole struct {
	Tenant models.Tenant
	Role   models.Role
}

type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description *string
	Status      *string
	AssigneeID  *uuid.UUID
}

// CreateTenant stores a new tenant and makes the caller its ADMIN.
func (s *Service) CreateTenant(ctx context.Context, caller uuid.UUID, input CreateTenantInput) (*models.Tenant, *models.Membership, error) {
	plan := input.Plan
	if plan == "" {
		plan = models.PlanFree
	}

	tenant := &models.Tenant{
		Name:   input.Name,
		Domain: input.Domain,
		Plan:   plan,
	}

	membership, err := s.repo.CreateTenantWithAdmin(ctx, tenant, caller)
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "tenant created", "tenant_id", tenant.ID, "user_id", caller)
	return tenant, membership, nil
}

// JoinTenant adds the caller to a tenant as MEMBER.
func (s *Service) JoinTenant(ctx context.Context, caller, tenantID uuid.UUID) (*models.Tenant, *models.Membership, error) {
	tenant, err := s.repo.FindTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("finding tenant: %w", err)
	}
	if tenant == nil {
		return nil, nil, ErrTenantNotFound
	}

	existing, err := s.repo.FindMembership(ctx, tenantID, caller)
	if err != nil {
		return nil, nil, fmt.Errorf("finding membership: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrDuplicateMembership
	}

	// A concurrent join may still win the insert; the unique index turns
	// that into ErrDuplicateMembership as well.
	membership := &models.Membership{
		TenantID: tenantID,
		UserID:   caller,
		Role:     models.RoleMember,
	}
	if err := s.repo.CreateMembership(ctx, membership); err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "tenant joined", "tenant_id", tenantID, "user_id", caller)
	return tenant, membership, nil
}

// MyTenants lists every tenant the caller belongs to with the caller's role.
func (s *Service) MyTenants(ctx context.Context, caller uuid.UUID) ([]TenantWithRole, error) {
	memberships, err := s.repo.ListMembershipsByUser(ctx, caller)
	if err != nil {
		return nil, err
	}

	tenants := make([]TenantWithRole, 0, len(memberships))
	for _, m := range memberships {
		if m.Tenant == nil {
			continue
		}
		tenants = append(tenants, TenantWithRole{Tenant: *m.Tenant, Role: m.Role})
	}
	return tenants, nil
}

// CreateProject requires an ADMIN membership in the tenant.
func (s *Service) CreateProject(ctx context.Context, caller, tenantID uuid.UUID, name string) (*models.Project, error) {
	if _, err := s.gate.Authorize(ctx, caller, tenantID, RequireAdmin); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:     name,
		TenantID: tenantID,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "project created", "project_id", project.ID, "tenant_id", tenantID, "user_id", caller)
	return project, nil
}

// ListProjects returns the tenant's projects, newest first.
func (s *Service) ListProjects(ctx context.Context, caller, tenantID uuid.UUID) ([]models.Project, error) {
	if _, err := s.gate.Authorize(ctx, caller, tenantID, RequireAny); err != nil {
		return nil, err
	}
	return s.repo.ListProjects(ctx, tenantID)
}

// CreateTask requires any membership in the project's tenant.
func (s *Service) CreateTask(ctx context.Context, caller uuid.UUID, input CreateTaskInput) (*models.Task, error) {
	project, err := s.projectFor(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.gate.Authorize(ctx, caller, project.TenantID, RequireAny); err != nil {
		return nil, err
	}

	if err := s.checkAssignee(ctx, input.AssigneeID); err != nil {
		return nil, err
	}

	status := models.DefaultTaskStatus
	if input.Status != nil {
		status = *input.Status
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		ProjectID:   project.ID,
		AssigneeID:  input.AssigneeID,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task created", "task_id", task.ID, "project_id", project.ID, "user_id", caller)
	return task, nil
}

// ListTasks returns the project's tasks, newest first, with assignees loaded.
func (s *Service) ListTasks(ctx context.Context, caller, projectID uuid.UUID) ([]models.Task, error) {
	project, err := s.projectFor(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if _, err := s.gate.Authorize(ctx, caller, project.TenantID, RequireAny); err != nil {
		return nil, err
	}

	return s.repo.ListTasks(ctx, projectID)
}

// UpdateTask applies a partial update; any member of the owning tenant may
// change any field.
func (s *Service) UpdateTask(ctx context.Context, caller, taskID uuid.UUID, patch TaskPatch) (*models.Task, error) {
	task, err := s.repo.FindTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("finding task: %w", err)
	}
	if task == nil || task.Project == nil {
		return nil, ErrTaskNotFound
	}

	if _, err := s.gate.Authorize(ctx, caller, task.Project.TenantID, RequireAny); err != nil {
		return nil, err
	}

	if err := s.checkAssignee(ctx, patch.AssigneeID); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateTask(ctx, taskID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task updated", "task_id", taskID, "user_id", caller)
	return updated, nil
}

func (s *Service) projectFor(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.repo.FindProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("finding project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// checkAssignee only verifies the user exists. Assignees are not required
// to be members of the tenant.
func (s *Service) checkAssignee(ctx context.Context, assigneeID *uuid.UUID) error {
	if assigneeID == nil {
		return nil
	}
	user, err := s.repo.FindUser(ctx, *assigneeID)
	if err != nil {
		return fmt.Errorf("finding assignee: %w", err)
	}
	if user == nil {
		return ErrAssigneeNotFound
	}
	return nil
}
