package models

import "github.com/google/uuid"

// PracticeLocation (tempat praktik) is a clinic or hospital where a member
// practices. Its lifecycle is owned entirely by the parent member: rows are
// replaced wholesale on update and removed by cascade on delete.
type PracticeLocation struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;not null;index"`
	NamaRS   string    `gorm:"column:nama_rs;not null"`
	Kota     string    `gorm:"column:kota;not null"`
	Provinsi string    `gorm:"column:provinsi;not null"`
}
