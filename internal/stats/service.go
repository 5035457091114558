// Package stats assembles the dashboard counters shown after login.
package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/simka-id/simka-backend/internal/members"
	"github.com/simka-id/simka-backend/pkg/auth"
	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/rbac"
)

// ActivityEntry is one recent audit line on the dashboard.
type ActivityEntry struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Action      enums.AuditAction `json:"action"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Dashboard aggregates the registry counters. Branch admins see numbers
// for their own branch only.
type Dashboard struct {
	TotalMembers       int64           `json:"total_members"`
	ActiveMembers      int64           `json:"active_members"`
	Branches           int64           `json:"branches"`
	ActiveBranchAdmins int64           `json:"active_branch_admins"`
	RecentActivity     []ActivityEntry `json:"recent_activity"`
}

// Service computes dashboard numbers for the caller's scope.
type Service interface {
	Dashboard(ctx context.Context, principal auth.Principal) (*Dashboard, error)
}

type memberCounter interface {
	CountByFilter(ctx context.Context, filter members.ListFilter) (int64, error)
	CountDistinctBranches(ctx context.Context) (int64, error)
}

type adminCounter interface {
	CountActiveBranchAdmins(ctx context.Context, branch *string) (int64, error)
}

type activityReader interface {
	Recent(ctx context.Context, branch *string, limit int) ([]models.ActivityLog, error)
}

const recentActivityLimit = 10

type service struct {
	members  memberCounter
	admins   adminCounter
	activity activityReader
}

// NewService wires the dashboard dependencies.
func NewService(members memberCounter, admins adminCounter, activity activityReader) (Service, error) {
	if members == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "members repository required")
	}
	if admins == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users repository required")
	}
	if activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit service required")
	}
	return &service{members: members, admins: admins, activity: activity}, nil
}

func (s *service) Dashboard(ctx context.Context, principal auth.Principal) (*Dashboard, error) {
	if !rbac.HasPermission(principal.Role, enums.UserRoleBranchAdmin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role")
	}

	var scope *string
	filter := members.ListFilter{}
	if principal.Role == enums.UserRoleBranchAdmin {
		branch := principal.BranchOrEmpty()
		if branch == "" {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "branch admin has no branch assigned")
		}
		scope = &branch
		filter.Branch = branch
	}

	total, err := s.members.CountByFilter(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count members")
	}

	activeFilter := filter
	activeFilter.Status = enums.MembershipStatusAktif
	active, err := s.members.CountByFilter(ctx, activeFilter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count active members")
	}

	branches := int64(1)
	if scope == nil {
		branches, err = s.members.CountDistinctBranches(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count branches")
		}
	}

	admins, err := s.admins.CountActiveBranchAdmins(ctx, scope)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count branch admins")
	}

	rows, err := s.activity.Recent(ctx, scope, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	recent := make([]ActivityEntry, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, ActivityEntry{
			ID:          row.ID,
			UserID:      row.UserID,
			Action:      row.Action,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}

	return &Dashboard{
		TotalMembers:       total,
		ActiveMembers:      active,
		Branches:           branches,
		ActiveBranchAdmins: admins,
		RecentActivity:     recent,
	}, nil
}
