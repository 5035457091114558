package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/simka-id/simka-backend/pkg/enums"
)

// ActivityLog is an append-only audit record. Rows are never updated or
// deleted by the application; actor and subject are referenced by id only.
type ActivityLog struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Action      enums.AuditAction `gorm:"type:text;not null"`
	Description string            `gorm:"type:text;not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime;index"`
}
