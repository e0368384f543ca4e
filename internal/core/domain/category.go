package domain

import (
	"errors"
	"time"
)

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategorySlugTaken = errors.New("category slug already exists")

// Category groups projects on the public site. Only active categories are
// visible to anonymous callers.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	SortOrder   int       `json:"sort_order" bson:"sort_order"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
