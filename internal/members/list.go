package members

import (
	"strings"

	"gorm.io/gorm"

	"github.com/simka-id/simka-backend/pkg/enums"
)

// ListFilter narrows a member listing. Zero-valued fields are ignored.
// Branch is authoritative once set: the service pins it to the caller's
// own branch for branch admins regardless of what was requested.
type ListFilter struct {
	Search string
	Status enums.MembershipStatus
	Gender enums.Gender
	Branch string
}

// apply appends each active filter as an explicit WHERE clause. Search
// matches name, NPA, or email case-insensitively.
func (f ListFilter) apply(q *gorm.DB) *gorm.DB {
	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"LOWER(nama_lengkap) LIKE ? OR LOWER(npa) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Status != "" {
		q = q.Where("status_keanggotaan = ?", f.Status)
	}
	if f.Gender != "" {
		q = q.Where("jenis_kelamin = ?", f.Gender)
	}
	if f.Branch != "" {
		q = q.Where("cabang = ?", f.Branch)
	}
	return q
}
