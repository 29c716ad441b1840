package response

import (
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromUser(u entities.User) UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// SessionResponse is returned by sign-up and login; the token is also set as a cookie.
type SessionResponse struct {
	Token       string               `json:"token"`
	ExpiresAt   time.Time            `json:"expires_at"`
	User        UserResponse         `json:"user"`
	Permissions entities.Permissions `json:"permissions"`
}

type MeResponse struct {
	User        UserResponse         `json:"user"`
	Permissions entities.Permissions `json:"permissions"`
}
