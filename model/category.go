package model

import "time"

// CategoryEntity represents the category table entity. The name carries a
// unique constraint.
type CategoryEntity struct {
	ID          uint64     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description,omitempty"`
	ImageURL    string     `db:"image_url" json:"image_url,omitempty"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CategoryView is the category shape exposed to the storefront.
type CategoryView struct {
	ID          uint64 `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	ImageURL    string `db:"image_url" json:"imageUrl,omitempty"`
	IsActive    bool   `db:"is_active" json:"isActive"`
}

// CategoryRequest is the admin create/update payload.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `json:"isActive"`
}
