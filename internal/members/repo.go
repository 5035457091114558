package members

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/pagination"
)

// Repository exposes member persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a members repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the member together with its practice locations. The
// insert fails with a unique violation on members_npa_key when the
// candidate NPA is already taken.
func (r *Repository) Create(ctx context.Context, tx *gorm.DB, member *models.Member) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(member).Error
}

// FindByID loads a member with its practice locations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Preload("TempatPraktik").
		First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns one page of members matching the filter plus the total
// match count, newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter, params pagination.Params) ([]models.Member, int64, error) {
	var total int64
	if err := filter.apply(r.db.WithContext(ctx).Model(&models.Member{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Member
	err := filter.apply(r.db.WithContext(ctx).Model(&models.Member{})).
		Preload("TempatPraktik").
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update persists the member's scalar columns.
func (r *Repository) Update(ctx context.Context, tx *gorm.DB, member *models.Member) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).
		Omit("TempatPraktik").
		Save(member).Error
}

// ReplacePracticeLocations deletes every stored tempat praktik row for
// the member and inserts the submitted set.
func (r *Repository) ReplacePracticeLocations(ctx context.Context, tx *gorm.DB, memberID uuid.UUID, locations []models.PracticeLocation) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.WithContext(ctx).
		Where("member_id = ?", memberID).
		Delete(&models.PracticeLocation{}).Error; err != nil {
		return err
	}
	if len(locations) == 0 {
		return nil
	}
	for i := range locations {
		if locations[i].ID == uuid.Nil {
			locations[i].ID = uuid.New()
		}
		locations[i].MemberID = memberID
	}
	return tx.WithContext(ctx).Create(&locations).Error
}

// Delete removes the member and its practice locations. The explicit
// child delete keeps backends without cascade enforcement consistent.
func (r *Repository) Delete(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	if err := tx.WithContext(ctx).
		Where("member_id = ?", memberID).
		Delete(&models.PracticeLocation{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Delete(&models.Member{}, "id = ?", memberID).Error
}

// EmailExists reports whether another member already uses the email.
// excludeID skips the member being updated.
func (r *Repository) EmailExists(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("email = ?", email)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByFilter returns how many members match the filter.
func (r *Repository) CountByFilter(ctx context.Context, filter ListFilter) (int64, error) {
	var count int64
	err := filter.apply(r.db.WithContext(ctx).Model(&models.Member{})).Count(&count).Error
	return count, err
}

// CountDistinctBranches returns the number of branches with at least
// one member.
func (r *Repository) CountDistinctBranches(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Distinct("cabang").
		Count(&count).Error
	return count, err
}
