package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/logger"
	"github.com/simka-id/simka-backend/pkg/metrics"
)

// Service records and reads activity log entries.
type Service interface {
	// Record appends an entry. Failures are logged and counted but never
	// returned: an audit write must not fail the operation it describes.
	Record(ctx context.Context, userID uuid.UUID, action enums.AuditAction, description string)
	Recent(ctx context.Context, branch *string, limit int) ([]models.ActivityLog, error)
}

type repository interface {
	Create(ctx context.Context, userID uuid.UUID, action enums.AuditAction, description string, at time.Time) error
	ListRecent(ctx context.Context, branch *string, limit int) ([]models.ActivityLog, error)
}

type service struct {
	repo    repository
	logg    *logger.Logger
	metrics *metrics.RegistryMetrics
	now     func() time.Time
}

const defaultRecentLimit = 10

// NewService wires audit log dependencies. metrics may be nil.
func NewService(repo repository, logg *logger.Logger, m *metrics.RegistryMetrics) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit log repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{repo: repo, logg: logg, metrics: m, now: time.Now}, nil
}

func (s *service) Record(ctx context.Context, userID uuid.UUID, action enums.AuditAction, description string) {
	if err := s.repo.Create(ctx, userID, action, description, s.now().UTC()); err != nil {
		s.metrics.IncAuditFailure(action.String())
		ctx = s.logg.WithFields(ctx, map[string]any{
			"action":  action.String(),
			"user_id": userID.String(),
		})
		s.logg.Error(ctx, "audit log write failed", err)
	}
}

func (s *service) Recent(ctx context.Context, branch *string, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := s.repo.ListRecent(ctx, branch, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recent activity")
	}
	return rows, nil
}
