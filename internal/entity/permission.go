package entity

import "fmt"

// Permission is an ordered capability tier on a note.
// none < read < write < admin < owner
type Permission int

const (
	PermissionNone Permission = iota
	PermissionRead
	PermissionWrite
	PermissionAdmin
	PermissionOwner
)

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	case PermissionAdmin:
		return "admin"
	case PermissionOwner:
		return "owner"
	default:
		return "none"
	}
}

// AtLeast reports whether p grants everything required grants.
func (p Permission) AtLeast(required Permission) bool {
	return p >= required
}

// ParsePermission maps a stored/requested level to a Permission.
// Only read, write and admin are grantable; owner is implicit and
// never stored in a share row.
func ParsePermission(s string) (Permission, error) {
	switch s {
	case "read":
		return PermissionRead, nil
	case "write":
		return PermissionWrite, nil
	case "admin":
		return PermissionAdmin, nil
	default:
		return PermissionNone, fmt.Errorf("invalid permission level: %q", s)
	}
}
