package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
)

// Repository persists activity log entries. The table is append-only;
// there are no update or delete operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an audit log repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a single activity log entry.
func (r *Repository) Create(ctx context.Context, userID uuid.UUID, action enums.AuditAction, description string, at time.Time) error {
	entry := models.ActivityLog{
		ID:          uuid.New(),
		UserID:      userID,
		Action:      action,
		Description: description,
		CreatedAt:   at,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

// ListRecent returns the newest entries first. When branch is set the
// results are limited to entries written by users of that branch.
func (r *Repository) ListRecent(ctx context.Context, branch *string, limit int) ([]models.ActivityLog, error) {
	q := r.db.WithContext(ctx).Model(&models.ActivityLog{})
	if branch != nil {
		q = q.Joins("JOIN users ON users.id = activity_logs.user_id").
			Where("users.branch = ?", *branch)
	}
	var rows []models.ActivityLog
	if err := q.Order("activity_logs.created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
