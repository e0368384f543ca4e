package domain

import (
	"errors"
	"time"
)

var ErrContactNotFound = errors.New("contact request not found")

// ContactRequest is a message submitted through the public contact form.
// Immutable after creation except for the read flag.
type ContactRequest struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string    `json:"message" bson:"message"`
	IsRead    bool      `json:"is_read" bson:"is_read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
