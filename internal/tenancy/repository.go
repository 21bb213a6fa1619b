package tenancy

import (
	"context"

	"github.com/google/uuid"
	"github.com/hugh/taskhub/internal/database/models"
)

// Find* methods return (nil, nil) when the row does not exist.

// MembershipFinder is all the Gate needs from the store.
type MembershipFinder interface {
	FindMembership(ctx context.Context, tenantID, userID uuid.UUID) (*models.Membership, error)
}

type MembershipStore interface {
	MembershipFinder
	// CreateMembership returns ErrDuplicateMembership if the pair already exists.
	CreateMembership(ctx context.Context, m *models.Membership) error
	// ListMembershipsByUser returns the user's memberships with Tenant loaded.
	ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]models.Membership, error)
}

type TenantStore interface {
	// CreateTenantWithAdmin stores the tenant and an ADMIN membership for
	// userID atomically, returning the membership.
	CreateTenantWithAdmin(ctx context.Context, tenant *models.Tenant, userID uuid.UUID) (*models.Membership, error)
	FindTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

type ProjectStore interface {
	CreateProject(ctx context.Context, p *models.Project) error
	FindProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	// ListProjects orders by creation time, newest first.
	ListProjects(ctx context.Context, tenantID uuid.UUID) ([]models.Project, error)
}

type TaskStore interface {
	CreateTask(ctx context.Context, t *models.Task) error
	// FindTask returns the task with Project loaded.
	FindTask(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// ListTasks orders by creation time, newest first, with Assignee loaded.
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]models.Task, error)
	// UpdateTask writes only the non-nil fields of patch.
	UpdateTask(ctx context.Context, id uuid.UUID, patch TaskPatch) (*models.Task, error)
}

type UserStore interface {
	FindUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Repository is the persistence dependency of the Service.
type Repository interface {
	MembershipStore
	TenantStore
	ProjectStore
	TaskStore
	UserStore
}

// TaskPatch lists the task fields an update may change.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	AssigneeID  *uuid.UUID
}

func (p TaskPatch) empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.AssigneeID == nil
}
