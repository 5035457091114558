package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simka-id/simka-backend/pkg/auth"
	"github.com/simka-id/simka-backend/pkg/db"
	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/metrics"
	"github.com/simka-id/simka-backend/pkg/pagination"
	"github.com/simka-id/simka-backend/pkg/rbac"
)

// Service defines the member registry operations. Every operation is
// scoped by the caller's role and branch.
type Service interface {
	List(ctx context.Context, principal auth.Principal, filter ListFilter, params pagination.Params) (*ListResult, error)
	Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*MemberDTO, error)
	Create(ctx context.Context, principal auth.Principal, input CreateMemberInput) (*MemberDTO, error)
	Update(ctx context.Context, principal auth.Principal, id uuid.UUID, input UpdateMemberInput) (*MemberDTO, error)
	Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error
}

// ListResult wraps one page of members and its pagination envelope.
type ListResult struct {
	Items      []MemberDTO         `json:"items"`
	Pagination pagination.Envelope `json:"pagination"`
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type repository interface {
	Create(ctx context.Context, tx *gorm.DB, member *models.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	List(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.Member, int64, error)
	Update(ctx context.Context, tx *gorm.DB, member *models.Member) error
	ReplacePracticeLocations(ctx context.Context, tx *gorm.DB, memberID uuid.UUID, locations []models.PracticeLocation) error
	Delete(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error
	EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}

type auditor interface {
	Record(ctx context.Context, userID uuid.UUID, action enums.AuditAction, description string)
}

type npaSource interface {
	Next() string
}

// ServiceParams wires the member service dependencies.
type ServiceParams struct {
	DB             txRunner
	Repository     repository
	Audit          auditor
	NPA            npaSource
	Metrics        *metrics.RegistryMetrics
	NPAMaxAttempts int
}

const defaultNPAMaxAttempts = 10

type service struct {
	db             txRunner
	repo           repository
	audit          auditor
	npa            npaSource
	metrics        *metrics.RegistryMetrics
	npaMaxAttempts int
}

// NewService validates and wires the member registry service.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "db runner required")
	}
	if params.Repository == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "members repository required")
	}
	if params.Audit == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit service required")
	}
	if params.NPA == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "npa generator required")
	}
	attempts := params.NPAMaxAttempts
	if attempts <= 0 {
		attempts = defaultNPAMaxAttempts
	}
	return &service{
		db:             params.DB,
		repo:           params.Repository,
		audit:          params.Audit,
		npa:            params.NPA,
		metrics:        params.Metrics,
		npaMaxAttempts: attempts,
	}, nil
}

func (s *service) List(ctx context.Context, principal auth.Principal, filter ListFilter, params pagination.Params) (*ListResult, error) {
	if !rbac.HasPermission(principal.Role, enums.UserRoleBranchAdmin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}
	if filter.Gender != "" && !filter.Gender.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid gender filter")
	}

	// Branch admins see their own branch only, whatever was requested.
	if principal.Role == enums.UserRoleBranchAdmin {
		filter.Branch = principal.BranchOrEmpty()
		if filter.Branch == "" {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "branch admin has no branch assigned")
		}
	}

	params = params.Normalize()
	rows, total, err := s.repo.List(ctx, filter, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list members")
	}

	items := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *FromModel(&rows[i]))
	}
	return &ListResult{
		Items:      items,
		Pagination: pagination.NewEnvelope(params, total),
	}, nil
}

func (s *service) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*MemberDTO, error) {
	if !rbac.HasPermission(principal.Role, enums.UserRoleBranchAdmin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role")
	}

	member, err := s.findAccessible(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return FromModel(member), nil
}

func (s *service) Create(ctx context.Context, principal auth.Principal, input CreateMemberInput) (*MemberDTO, error) {
	if !rbac.HasPermission(principal.Role, enums.UserRoleBranchAdmin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role")
	}
	if !rbac.CanAccessBranch(principal.Role, principal.BranchOrEmpty(), input.Cabang) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "cannot register members outside your branch")
	}
	if !enums.Gender(input.JenisKelamin).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid jenis_kelamin")
	}
	if !enums.MemberStatus(input.StatusAnggota).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status_anggota")
	}

	taken, err := s.repo.EmailExists(ctx, input.Email, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check member email")
	}
	if taken {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered").
			WithDetails(map[string]string{"field": "email"})
	}

	member := input.toModel("")
	if principal.Role == enums.UserRoleBranchAdmin {
		adminID := principal.UserID
		member.BranchAdminID = &adminID
	}

	if err := s.insertWithFreshNPA(ctx, member); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, principal.UserID, enums.AuditActionCreateMember,
		fmt.Sprintf("Created new member: %s (%s)", member.NamaLengkap, member.NPA))
	return FromModel(member), nil
}

// insertWithFreshNPA issues candidate NPAs until the insert lands or
// the attempt budget runs out. Collisions surface as unique violations
// on members_npa_key, so concurrent creates never share a number.
func (s *service) insertWithFreshNPA(ctx context.Context, member *models.Member) error {
	for attempt := 0; attempt < s.npaMaxAttempts; attempt++ {
		member.NPA = s.npa.Next()
		err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
			return s.repo.Create(ctx, tx, member)
		})
		if err == nil {
			s.metrics.IncNPAAttempt("ok")
			return nil
		}
		if db.IsUniqueViolation(err, "npa") {
			s.metrics.IncNPAAttempt("conflict")
			continue
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert member")
	}
	s.metrics.IncNPAExhausted()
	return pkgerrors.New(pkgerrors.CodeConflict, "could not allocate a unique npa")
}

func (s *service) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, input UpdateMemberInput) (*MemberDTO, error) {
	if !rbac.HasPermission(principal.Role, enums.UserRoleBranchAdmin) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role")
	}

	member, err := s.findAccessible(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != member.Email {
		taken, err := s.repo.EmailExists(ctx, *input.Email, &member.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check member email")
		}
		if taken {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered").
				WithDetails(map[string]string{"field": "email"})
		}
	}

	input.applyTo(member)
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, member); err != nil {
			return err
		}
		if input.TempatPraktik == nil {
			return nil
		}
		locations := make([]models.PracticeLocation, 0, len(*input.TempatPraktik))
		for _, loc := range *input.TempatPraktik {
			locations = append(locations, models.PracticeLocation{
				NamaRS:   loc.NamaRS,
				Kota:     loc.Kota,
				Provinsi: loc.Provinsi,
			})
		}
		return s.repo.ReplacePracticeLocations(ctx, tx, member.ID, locations)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update member")
	}

	updated, err := s.repo.FindByID(ctx, member.ID)
	if err != nil {
		// The row can vanish between the write and the reload.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload member")
	}

	s.audit.Record(ctx, principal.UserID, enums.AuditActionUpdateMember,
		fmt.Sprintf("Updated member: %s (%s)", updated.NamaLengkap, updated.NPA))
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	if !rbac.HasPermission(principal.Role, enums.UserRoleBranchAdmin) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role")
	}

	member, err := s.findAccessible(ctx, principal, id)
	if err != nil {
		return err
	}

	// Captured before the row is gone so the audit entry can name it.
	nama, npa := member.NamaLengkap, member.NPA

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, member.ID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete member")
	}

	s.audit.Record(ctx, principal.UserID, enums.AuditActionDeleteMember,
		fmt.Sprintf("Deleted member: %s (%s)", nama, npa))
	return nil
}

// findAccessible loads the member and verifies the caller may touch its
// branch. Not-found wins over forbidden so callers cannot probe ids
// they could not access anyway.
func (s *service) findAccessible(ctx context.Context, principal auth.Principal, id uuid.UUID) (*models.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find member")
	}
	if !rbac.CanAccessBranch(principal.Role, principal.BranchOrEmpty(), member.Cabang) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "member belongs to another branch")
	}
	return member, nil
}
