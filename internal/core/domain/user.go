package domain

import (
	"errors"
	"time"
)

const (
	RoleAgent  = "agent"
	RoleClient = "client"
	RolePublic = "public"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user has been assigned the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Caller is the actor a request is evaluated for. The zero value is the
// anonymous caller (no id, no roles).
type Caller struct {
	ID    string
	Roles []string
}

// Anonymous is the caller used for requests without a valid bearer token.
var Anonymous = Caller{}

// IsAnonymous reports whether the caller carries no identity.
func (c Caller) IsAnonymous() bool {
	return c.ID == "" && len(c.Roles) == 0
}

// HasRole reports whether the caller holds the given role.
func (c Caller) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AsCaller projects a user into the caller shape used by the policy evaluator.
func (u *User) AsCaller() Caller {
	return Caller{ID: u.ID, Roles: u.Roles}
}
