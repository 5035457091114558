package enums

import "fmt"

// AuditAction identifies a state-changing action recorded in the activity log.
type AuditAction string

const (
	AuditActionLogin        AuditAction = "LOGIN"
	AuditActionCreateMember AuditAction = "CREATE_MEMBER"
	AuditActionUpdateMember AuditAction = "UPDATE_MEMBER"
	AuditActionDeleteMember AuditAction = "DELETE_MEMBER"
)

var validAuditActions = []AuditAction{
	AuditActionLogin,
	AuditActionCreateMember,
	AuditActionUpdateMember,
	AuditActionDeleteMember,
}

// String implements fmt.Stringer.
func (a AuditAction) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AuditAction.
func (a AuditAction) IsValid() bool {
	for _, candidate := range validAuditActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAuditAction converts raw input into an AuditAction.
func ParseAuditAction(value string) (AuditAction, error) {
	for _, candidate := range validAuditActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid audit action %q", value)
}
