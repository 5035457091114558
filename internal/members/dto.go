package members

import (
	"time"

	"github.com/google/uuid"

	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
)

// PracticeLocationInput is one tempat praktik row as submitted by a client.
type PracticeLocationInput struct {
	NamaRS   string `json:"nama_rs" validate:"required"`
	Kota     string `json:"kota" validate:"required"`
	Provinsi string `json:"provinsi" validate:"required"`
}

// CreateMemberInput carries everything needed to register a member. The
// NPA is never accepted from clients; it is issued server-side.
type CreateMemberInput struct {
	GelarDepan       *string                 `json:"gelar_depan"`
	NamaLengkap      string                  `json:"nama_lengkap" validate:"required"`
	GelarBelakang    *string                 `json:"gelar_belakang"`
	JenisKelamin     string                  `json:"jenis_kelamin" validate:"required,oneof=L P"`
	TempatLahir      string                  `json:"tempat_lahir" validate:"required"`
	TanggalLahir     time.Time               `json:"tanggal_lahir" validate:"required"`
	Agama            *string                 `json:"agama"`
	StatusPerkawinan *string                 `json:"status_perkawinan"`
	AlamatRumah      string                  `json:"alamat_rumah" validate:"required"`
	Kota             string                  `json:"kota" validate:"required"`
	Provinsi         string                  `json:"provinsi" validate:"required"`
	NomorHP          string                  `json:"nomor_hp" validate:"required,min=10"`
	Email            string                  `json:"email" validate:"required,email"`
	NIK              *string                 `json:"nik"`
	NPWP             *string                 `json:"npwp"`
	Alumni           string                  `json:"alumni" validate:"required"`
	BulanTahunLulus  string                  `json:"bulan_tahun_lulus" validate:"required"`
	StatusAnggota    string                  `json:"status_anggota" validate:"required,oneof=BIASA MUDA LUAR_BIASA"`
	Cabang           string                  `json:"cabang" validate:"required"`
	TempatPraktik    []PracticeLocationInput `json:"tempat_praktik" validate:"dive"`
}

// UpdateMemberInput is a partial update: nil fields keep their stored
// value. TempatPraktik is the exception, when present the submitted set
// replaces every stored row.
type UpdateMemberInput struct {
	GelarDepan        *string                  `json:"gelar_depan"`
	NamaLengkap       *string                  `json:"nama_lengkap"`
	GelarBelakang     *string                  `json:"gelar_belakang"`
	JenisKelamin      *string                  `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	TempatLahir       *string                  `json:"tempat_lahir"`
	TanggalLahir      *time.Time               `json:"tanggal_lahir"`
	Agama             *string                  `json:"agama"`
	StatusPerkawinan  *string                  `json:"status_perkawinan"`
	AlamatRumah       *string                  `json:"alamat_rumah"`
	Kota              *string                  `json:"kota"`
	Provinsi          *string                  `json:"provinsi"`
	NomorHP           *string                  `json:"nomor_hp" validate:"omitempty,min=10"`
	Email             *string                  `json:"email" validate:"omitempty,email"`
	NIK               *string                  `json:"nik"`
	NPWP              *string                  `json:"npwp"`
	Alumni            *string                  `json:"alumni"`
	BulanTahunLulus   *string                  `json:"bulan_tahun_lulus"`
	StatusAnggota     *string                  `json:"status_anggota" validate:"omitempty,oneof=BIASA MUDA LUAR_BIASA"`
	StatusKeanggotaan *string                  `json:"status_keanggotaan" validate:"omitempty,oneof=AKTIF NON_AKTIF MENINGGAL_DUNIA"`
	Cabang            *string                  `json:"cabang"`
	TempatPraktik     *[]PracticeLocationInput `json:"tempat_praktik" validate:"omitempty,dive"`
}

// PracticeLocationDTO is the transport shape of a tempat praktik row.
type PracticeLocationDTO struct {
	ID       uuid.UUID `json:"id"`
	NamaRS   string    `json:"nama_rs"`
	Kota     string    `json:"kota"`
	Provinsi string    `json:"provinsi"`
}

// MemberDTO is the transport shape of a member.
type MemberDTO struct {
	ID                uuid.UUID              `json:"id"`
	NPA               string                 `json:"npa"`
	GelarDepan        *string                `json:"gelar_depan,omitempty"`
	NamaLengkap       string                 `json:"nama_lengkap"`
	GelarBelakang     *string                `json:"gelar_belakang,omitempty"`
	JenisKelamin      enums.Gender           `json:"jenis_kelamin"`
	TempatLahir       string                 `json:"tempat_lahir"`
	TanggalLahir      time.Time              `json:"tanggal_lahir"`
	Agama             *string                `json:"agama,omitempty"`
	StatusPerkawinan  *string                `json:"status_perkawinan,omitempty"`
	AlamatRumah       string                 `json:"alamat_rumah"`
	Kota              string                 `json:"kota"`
	Provinsi          string                 `json:"provinsi"`
	NomorHP           string                 `json:"nomor_hp"`
	Email             string                 `json:"email"`
	NIK               *string                `json:"nik,omitempty"`
	NPWP              *string                `json:"npwp,omitempty"`
	Alumni            string                 `json:"alumni"`
	BulanTahunLulus   string                 `json:"bulan_tahun_lulus"`
	StatusAnggota     enums.MemberStatus     `json:"status_anggota"`
	StatusKeanggotaan enums.MembershipStatus `json:"status_keanggotaan"`
	Cabang            string                 `json:"cabang"`
	TempatPraktik     []PracticeLocationDTO  `json:"tempat_praktik"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// FromModel maps a persisted member to its transport shape.
func FromModel(m *models.Member) *MemberDTO {
	if m == nil {
		return nil
	}

	locations := make([]PracticeLocationDTO, 0, len(m.TempatPraktik))
	for _, loc := range m.TempatPraktik {
		locations = append(locations, PracticeLocationDTO{
			ID:       loc.ID,
			NamaRS:   loc.NamaRS,
			Kota:     loc.Kota,
			Provinsi: loc.Provinsi,
		})
	}

	return &MemberDTO{
		ID:                m.ID,
		NPA:               m.NPA,
		GelarDepan:        m.GelarDepan,
		NamaLengkap:       m.NamaLengkap,
		GelarBelakang:     m.GelarBelakang,
		JenisKelamin:      m.JenisKelamin,
		TempatLahir:       m.TempatLahir,
		TanggalLahir:      m.TanggalLahir,
		Agama:             m.Agama,
		StatusPerkawinan:  m.StatusPerkawinan,
		AlamatRumah:       m.AlamatRumah,
		Kota:              m.Kota,
		Provinsi:          m.Provinsi,
		NomorHP:           m.NomorHP,
		Email:             m.Email,
		NIK:               m.NIK,
		NPWP:              m.NPWP,
		Alumni:            m.Alumni,
		BulanTahunLulus:   m.BulanTahunLulus,
		StatusAnggota:     m.StatusAnggota,
		StatusKeanggotaan: m.StatusKeanggotaan,
		Cabang:            m.Cabang,
		TempatPraktik:     locations,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (in CreateMemberInput) toModel(npa string) *models.Member {
	locations := make([]models.PracticeLocation, 0, len(in.TempatPraktik))
	for _, loc := range in.TempatPraktik {
		locations = append(locations, models.PracticeLocation{
			ID:       uuid.New(),
			NamaRS:   loc.NamaRS,
			Kota:     loc.Kota,
			Provinsi: loc.Provinsi,
		})
	}

	return &models.Member{
		ID:                uuid.New(),
		NPA:               npa,
		GelarDepan:        in.GelarDepan,
		NamaLengkap:       in.NamaLengkap,
		GelarBelakang:     in.GelarBelakang,
		JenisKelamin:      enums.Gender(in.JenisKelamin),
		TempatLahir:       in.TempatLahir,
		TanggalLahir:      in.TanggalLahir,
		Agama:             in.Agama,
		StatusPerkawinan:  in.StatusPerkawinan,
		AlamatRumah:       in.AlamatRumah,
		Kota:              in.Kota,
		Provinsi:          in.Provinsi,
		NomorHP:           in.NomorHP,
		Email:             in.Email,
		NIK:               in.NIK,
		NPWP:              in.NPWP,
		Alumni:            in.Alumni,
		BulanTahunLulus:   in.BulanTahunLulus,
		StatusAnggota:     enums.MemberStatus(in.StatusAnggota),
		StatusKeanggotaan: enums.MembershipStatusAktif,
		Cabang:            in.Cabang,
		TempatPraktik:     locations,
	}
}

// applyTo copies every set field onto the model. TempatPraktik is
// handled separately by the repo.
func (in UpdateMemberInput) applyTo(m *models.Member) {
	if in.GelarDepan != nil {
		m.GelarDepan = in.GelarDepan
	}
	if in.NamaLengkap != nil {
		m.NamaLengkap = *in.NamaLengkap
	}
	if in.GelarBelakang != nil {
		m.GelarBelakang = in.GelarBelakang
	}
	if in.JenisKelamin != nil {
		m.JenisKelamin = enums.Gender(*in.JenisKelamin)
	}
	if in.TempatLahir != nil {
		m.TempatLahir = *in.TempatLahir
	}
	if in.TanggalLahir != nil {
		m.TanggalLahir = *in.TanggalLahir
	}
	if in.Agama != nil {
		m.Agama = in.Agama
	}
	if in.StatusPerkawinan != nil {
		m.StatusPerkawinan = in.StatusPerkawinan
	}
	if in.AlamatRumah != nil {
		m.AlamatRumah = *in.AlamatRumah
	}
	if in.Kota != nil {
		m.Kota = *in.Kota
	}
	if in.Provinsi != nil {
		m.Provinsi = *in.Provinsi
	}
	if in.NomorHP != nil {
		m.NomorHP = *in.NomorHP
	}
	if in.Email != nil {
		m.Email = *in.Email
	}
	if in.NIK != nil {
		m.NIK = in.NIK
	}
	if in.NPWP != nil {
		m.NPWP = in.NPWP
	}
	if in.Alumni != nil {
		m.Alumni = *in.Alumni
	}
	if in.BulanTahunLulus != nil {
		m.BulanTahunLulus = *in.BulanTahunLulus
	}
	if in.StatusAnggota != nil {
		m.StatusAnggota = enums.MemberStatus(*in.StatusAnggota)
	}
	if in.StatusKeanggotaan != nil {
		m.StatusKeanggotaan = enums.MembershipStatus(*in.StatusKeanggotaan)
	}
	if in.Cabang != nil {
		m.Cabang = *in.Cabang
	}
}
