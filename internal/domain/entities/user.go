package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
}

// NewUser builds a user with a random identifier. The display name defaults
// to the local part of the email address.
func NewUser(email, name string, role Role) *User {
	return newUser(uuid.NewString(), email, name, role)
}

// NewSessionUser builds a user whose identifier is derived from the email,
// so every session for the same address is the same user.
func NewSessionUser(email, name string, role Role) *User {
	return newUser(UserIDForEmail(email), email, name, role)
}

func newUser(id, email, name string, role Role) *User {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return &User{
		Id:        id,
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}
}

// UserIDForEmail derives a stable identifier so the same address maps to
// the same user across sessions.
func UserIDForEmail(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

// ValidateEmail rejects blank or malformed addresses.
func ValidateEmail(email string) error {
	return validate.Var(email, "required,email")
}

// Guest is the identity used for requests without a session.
func Guest() *User {
	return &User{Role: RoleGuest}
}

func (u *User) IsGuest() bool {
	return u == nil || u.Id == ""
}

func (u *User) validate() error {
	if u.Id == "" {
		return errors.New("id must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if !u.Role.Valid() {
		return ErrUnknownRole
	}
	return nil
}

// Validate checks a user record decoded from an external source.
func (u *User) Validate() error {
	return u.validate()
}
