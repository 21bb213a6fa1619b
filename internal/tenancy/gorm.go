package tenancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugh/taskhub/internal/database"
	"github.com/hugh/taskhub/internal/database/models"
	"gorm.io/gorm"
)

// GormRepository implements Repository on a gorm connection.
type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FindMembership(ctx context.Context, tenantID, userID uuid.UUID) (*models.Membership, error) {
	var m models.Membership
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		First(&m).Error
	return found(&m, err)
}

func (r *GormRepository) CreateMembership(ctx context.Context, m *models.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return ErrDuplicateMembership
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *GormRepository) ListMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	if err := r.db.WithContext(ctx).
		Preload("Tenant").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return memberships, nil
}

func (r *GormRepository) CreateTenantWithAdmin(ctx context.Context, tenant *models.Tenant, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return fmt.Errorf("creating tenant: %w", err)
		}

		membership = models.Membership{
			TenantID: tenant.ID,
			UserID:   userID,
			Role:     models.RoleAdmin,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return fmt.Errorf("creating admin membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *GormRepository) FindTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	return found(&tenant, err)
}

func (r *GormRepository) CreateProject(ctx context.Context, p *models.Project) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

func (r *GormRepository) FindProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	return found(&project, err)
}

func (r *GormRepository) ListProjects(ctx context.Context, tenantID uuid.UUID) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (r *GormRepository) CreateTask(ctx context.Context, t *models.Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

func (r *GormRepository) FindTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		First(&task, "id = ?", id).Error
	return found(&task, err)
}

func (r *GormRepository) ListTasks(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

func (r *GormRepository) UpdateTask(ctx context.Context, id uuid.UUID, patch TaskPatch) (*models.Task, error) {
	if !patch.empty() {
		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Status != nil {
			updates["status"] = *patch.Status
		}
		if patch.AssigneeID != nil {
			updates["assignee_id"] = *patch.AssigneeID
		}

		res := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("updating task: %w", res.Error)
		}
	}

	task, err := r.FindTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (r *GormRepository) FindUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return found(&user, err)
}

// found maps gorm's not-found error to a nil result.
func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
