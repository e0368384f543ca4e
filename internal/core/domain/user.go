package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidRole = errors.New("unknown role")

// User models a staff account able to authenticate against the admin API.
// PasswordHash is excluded from every JSON response.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}
