package tenancy

import (
	"errors"
)

var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrAssigneeNotFound    = errors.New("assignee not found")
	ErrNotMember           = errors.New("not a member")
	ErrInsufficientRole    = errors.New("insufficient role")
	ErrDuplicateMembership = errors.New("already a member of this tenant")
)

// DenyError is returned by the Gate when a caller may not act on a tenant.
// It unwraps to ErrNotMember or ErrInsufficientRole.
type DenyError struct {
	Reason error
}

func (e *DenyError) Error() string {
	return "access denied: " + e.Reason.Error()
}

func (e *DenyError) Unwrap() error {
	return e.Reason
}

// IsDenied reports whether err is an authorization denial.
func IsDenied(err error) bool {
	var deny *DenyError
	return errors.As(err, &deny)
}
