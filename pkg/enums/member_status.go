package enums

import "fmt"

// MemberStatus is the membership class assigned at registration
// (anggota biasa, muda, or luar biasa).
type MemberStatus string

const (
	MemberStatusBiasa     MemberStatus = "BIASA"
	MemberStatusMuda      MemberStatus = "MUDA"
	MemberStatusLuarBiasa MemberStatus = "LUAR_BIASA"
)

var validMemberStatuses = []MemberStatus{
	MemberStatusBiasa,
	MemberStatusMuda,
	MemberStatusLuarBiasa,
}

// String implements fmt.Stringer.
func (m MemberStatus) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MemberStatus.
func (m MemberStatus) IsValid() bool {
	for _, candidate := range validMemberStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMemberStatus converts raw input into a MemberStatus.
func ParseMemberStatus(value string) (MemberStatus, error) {
	for _, candidate := range validMemberStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid member status %q", value)
}
