package stats

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simka-id/simka-backend/internal/members"
	"github.com/simka-id/simka-backend/pkg/auth"
	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
)

type fakeMemberCounter struct {
	filters []members.ListFilter
}

func (f *fakeMemberCounter) CountByFilter(_ context.Context, filter members.ListFilter) (int64, error) {
	f.filters = append(f.filters, filter)
	if filter.Status == enums.MembershipStatusAktif {
		return 7, nil
	}
	return 10, nil
}

func (f *fakeMemberCounter) CountDistinctBranches(context.Context) (int64, error) {
	return 4, nil
}

type fakeAdminCounter struct {
	branch *string
}

func (f *fakeAdminCounter) CountActiveBranchAdmins(_ context.Context, branch *string) (int64, error) {
	f.branch = branch
	return 3, nil
}

type fakeActivityReader struct {
	branch *string
}

func (f *fakeActivityReader) Recent(_ context.Context, branch *string, _ int) ([]models.ActivityLog, error) {
	f.branch = branch
	return []models.ActivityLog{
		{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			Action:      enums.AuditActionCreateMember,
			Description: "Created new member: Siti (202601150001)",
			CreatedAt:   time.Now().UTC(),
		},
	}, nil
}

func TestDashboardCentralAdminSeesGlobalNumbers(t *testing.T) {
	membersRepo := &fakeMemberCounter{}
	admins := &fakeAdminCounter{}
	activity := &fakeActivityReader{}
	svc, err := NewService(membersRepo, admins, activity)
	require.NoError(t, err)

	principal := auth.Principal{UserID: uuid.New(), Role: enums.UserRoleCentralAdmin}
	dash, err := svc.Dashboard(context.Background(), principal)
	require.NoError(t, err)

	assert.EqualValues(t, 10, dash.TotalMembers)
	assert.EqualValues(t, 7, dash.ActiveMembers)
	assert.EqualValues(t, 4, dash.Branches)
	assert.EqualValues(t, 3, dash.ActiveBranchAdmins)
	require.Len(t, dash.RecentActivity, 1)

	assert.Nil(t, admins.branch)
	assert.Nil(t, activity.branch)
	require.Len(t, membersRepo.filters, 2)
	assert.Empty(t, membersRepo.filters[0].Branch)
}

func TestDashboardBranchAdminIsScoped(t *testing.T) {
	membersRepo := &fakeMemberCounter{}
	admins := &fakeAdminCounter{}
	activity := &fakeActivityReader{}
	svc, err := NewService(membersRepo, admins, activity)
	require.NoError(t, err)

	branch := "riau"
	principal := auth.Principal{UserID: uuid.New(), Role: enums.UserRoleBranchAdmin, Branch: &branch}
	dash, err := svc.Dashboard(context.Background(), principal)
	require.NoError(t, err)

	assert.EqualValues(t, 1, dash.Branches)
	require.NotNil(t, admins.branch)
	assert.Equal(t, "riau", *admins.branch)
	require.NotNil(t, activity.branch)
	assert.Equal(t, "riau", *activity.branch)
	require.Len(t, membersRepo.filters, 2)
	assert.Equal(t, "riau", membersRepo.filters[0].Branch)
	assert.Equal(t, "riau", membersRepo.filters[1].Branch)
}

func TestDashboardRejectsMemberRole(t *testing.T) {
	svc, err := NewService(&fakeMemberCounter{}, &fakeAdminCounter{}, &fakeActivityReader{})
	require.NoError(t, err)

	_, err = svc.Dashboard(context.Background(), auth.Principal{Role: enums.UserRoleMember})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))

	noBranch := auth.Principal{Role: enums.UserRoleBranchAdmin}
	_, err = svc.Dashboard(context.Background(), noBranch)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
}
