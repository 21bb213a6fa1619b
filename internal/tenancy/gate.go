package tenancy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hugh/taskhub/internal/database/models"
)

// Requirement is the membership level an operation needs.
type Requirement int

const (
	RequireAny Requirement = iota
	RequireAdmin
)

func (r Requirement) String() string {
	if r == RequireAdmin {
		return "admin"
	}
	return "any"
}

// Gate decides whether a user may act on a tenant. Membership rows are the
// only source of truth.
type Gate struct {
	memberships MembershipFinder
	logger      *slog.Logger
}

func NewGate(memberships MembershipFinder, logger *slog.Logger) *Gate {
	return &Gate{memberships: memberships, logger: logger}
}

// Authorize returns the caller's membership when it satisfies req, or a
// *DenyError. Store failures are returned wrapped and are not denials.
func (g *Gate) Authorize(ctx context.Context, userID, tenantID uuid.UUID, req Requirement) (*models.Membership, error) {
	m, err := g.memberships.FindMembership(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving membership: %w", err)
	}

	if m == nil {
		g.deny(ctx, userID, tenantID, req, ErrNotMember)
		return nil, &DenyError{Reason: ErrNotMember}
	}

	if req == RequireAdmin && m.Role != models.RoleAdmin {
		g.deny(ctx, userID, tenantID, req, ErrInsufficientRole)
		return nil, &DenyError{Reason: ErrInsufficientRole}
	}

	return m, nil
}

func (g *Gate) deny(ctx context.Context, userID, tenantID uuid.UUID, req Requirement, reason error) {
	if g.logger == nil {
		return
	}
	g.logger.DebugContext(ctx, "access denied",
		"user_id", userID,
		"tenant_id", tenantID,
		"required", req.String(),
		"reason", reason.Error(),
	)
}
