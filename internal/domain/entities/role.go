package entities

import (
	"errors"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of roles a user can hold. The zero value is
// RoleUnknown and is denied every permission.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleUser
	RoleGuest
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	case RoleGuest:
		return "guest"
	default:
		return ""
	}
}

// Valid reports whether r is one of admin, user or guest.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// ParseRole converts external input into a Role. Anything other than the
// three known role names yields RoleUnknown and ErrUnknownRole.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "user":
		return RoleUser, nil
	case "guest":
		return RoleGuest, nil
	default:
		return RoleUnknown, ErrUnknownRole
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText never fails: unknown role names decode to RoleUnknown so a
// tampered record cannot gain permissions.
func (r *Role) UnmarshalText(text []byte) error {
	role, _ := ParseRole(string(text))
	*r = role
	return nil
}
