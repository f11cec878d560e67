package model

import "time"

// UserEntity represents the local user table. Storefront shoppers live in the
// store api; local accounts exist for the admin back office.
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying local users.
type UserFilter struct {
	ID    uint64
	Email string
}

// Session is the request-scoped identity: who the caller is and the bearer
// credential to present to the store api on their behalf.
type Session struct {
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	RemoteToken string `json:"remote_token,omitempty"`
}

// LoginRequest authenticates a shopper against the store api.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is passed through to the store api.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Token string `json:"token"`
}

// AdminLoginRequest authenticates against the local user table.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RemoteAuth is what the store api hands back on a successful login.
type RemoteAuth struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt,omitempty"`
	FirstName string `json:"firstName,omitempty"`
}
