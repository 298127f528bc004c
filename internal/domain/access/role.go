package access

import "strings"

// ===============================
// Role
// ===============================

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"

	// RoleAnonymous is used when no session exists.
	RoleAnonymous Role = "anonymous"
	// RoleUnresolved is used when a session exists but its profile role
	// could not be read.
	RoleUnresolved Role = ""
)

// ParseRole maps a profiles.role value onto the closed set. Any non-empty
// value other than admin or staff is a client.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return RoleUnresolved
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleStaff):
		return RoleStaff
	default:
		return RoleClient
	}
}

// Privileged reports whether the role may see the dashboard.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r Role) String() string {
	if r == RoleUnresolved {
		return "unresolved"
	}
	return string(r)
}
