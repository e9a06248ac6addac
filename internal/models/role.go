package models

import "fmt"

// Role is the closed set of account roles. Authorization decisions branch on
// this type exactly once, at the routing layer.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleProvider, RoleAdmin:
		return Role(s), nil
	case RoleGuest, "":
		return RoleGuest, nil
	default:
		return RoleGuest, fmt.Errorf("unknown role: %q", s)
	}
}

// CanAct reports whether the role satisfies the required role. Admin
// satisfies everything; guest satisfies nothing that requires an account.
func (r Role) CanAct(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	if required == RoleGuest {
		return true
	}
	return r == required
}
