package entities

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleSuper      = "super"
	RoleAdmin      = "admin"
	RoleTesouraria = "tesouraria"
)

// Role grants a set of permissions to the users holding it.
type Role struct {
	Name              string    `json:"name"`
	IsSuper           bool      `json:"is_super"`
	CanAccessAdmin    bool      `json:"can_access_admin"`
	CanReviewPayments bool      `json:"can_review_payments"`
	CreatedAt         time.Time `json:"created_at"`
}

// DefaultRoles are seeded by the setup command.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleSuper, IsSuper: true, CanAccessAdmin: true, CanReviewPayments: true},
		{Name: RoleAdmin, CanAccessAdmin: true},
		{Name: RoleTesouraria, CanAccessAdmin: true, CanReviewPayments: true},
	}
}

// User is an account able to sign in.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	Roles        []string   `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (u *User) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u User) CheckPassword(raw string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}

func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Permissions is the effective capability set of a user.
type Permissions struct {
	IsSuper           bool `json:"is_super"`
	CanAccessAdmin    bool `json:"can_access_admin"`
	CanReviewPayments bool `json:"can_review_payments"`
}

// PermissionsFor merges the flags of the given roles. Super implies everything.
func PermissionsFor(roles []Role) Permissions {
	var p Permissions
	for _, r := range roles {
		p.IsSuper = p.IsSuper || r.IsSuper
		p.CanAccessAdmin = p.CanAccessAdmin || r.CanAccessAdmin
		p.CanReviewPayments = p.CanReviewPayments || r.CanReviewPayments
	}
	if p.IsSuper {
		p.CanAccessAdmin = true
		p.CanReviewPayments = true
	}
	return p
}
