package models

import (
	"time"
)

// User represents a roster member of the drone unit.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// PasswordHash is empty for OIDC-only accounts. Never serialized.
	PasswordHash string `json:"-" db:"password_hash"`
}

// UserForm represents form data for creating/updating roster members
type UserForm struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Validate validates the user form data
func (f *UserForm) Validate() []string {
	var errors []string

	if f.Email == "" {
		errors = append(errors, "Email is required")
	}

	if f.Email != "" && !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}

	if len(f.Email) > 255 {
		errors = append(errors, "Email must be less than 255 characters")
	}

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	return errors
}
