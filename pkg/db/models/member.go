package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/simka-id/simka-backend/pkg/enums"
)

// Member is the registry's primary entity. NPA is assigned once at
// creation and never reused, even after the member is deleted.
type Member struct {
	ID                uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	NPA               string                 `gorm:"column:npa;type:text;not null;uniqueIndex"`
	GelarDepan        *string                `gorm:"column:gelar_depan"`
	NamaLengkap       string                 `gorm:"column:nama_lengkap;not null"`
	GelarBelakang     *string                `gorm:"column:gelar_belakang"`
	JenisKelamin      enums.Gender           `gorm:"column:jenis_kelamin;type:text;not null"`
	TempatLahir       string                 `gorm:"column:tempat_lahir;not null"`
	TanggalLahir      time.Time              `gorm:"column:tanggal_lahir;not null"`
	Agama             *string                `gorm:"column:agama"`
	StatusPerkawinan  *string                `gorm:"column:status_perkawinan"`
	AlamatRumah       string                 `gorm:"column:alamat_rumah;not null"`
	Kota              string                 `gorm:"column:kota;not null"`
	Provinsi          string                 `gorm:"column:provinsi;not null"`
	NomorHP           string                 `gorm:"column:nomor_hp;not null"`
	Email             string                 `gorm:"type:text;not null"`
	NIK               *string                `gorm:"column:nik"`
	NPWP              *string                `gorm:"column:npwp"`
	Alumni            string                 `gorm:"column:alumni;not null"`
	BulanTahunLulus   string                 `gorm:"column:bulan_tahun_lulus;not null"`
	StatusAnggota     enums.MemberStatus     `gorm:"column:status_anggota;type:text;not null"`
	StatusKeanggotaan enums.MembershipStatus `gorm:"column:status_keanggotaan;type:text;not null;default:AKTIF"`
	Cabang            string                 `gorm:"column:cabang;not null;index"`
	BranchAdminID     *uuid.UUID             `gorm:"column:branch_admin_id;type:uuid"`
	TempatPraktik     []PracticeLocation     `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
