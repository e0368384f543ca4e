package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrProjectSlugTaken = errors.New("project slug already exists")
var ErrAlreadyPublished = errors.New("project is already published")
var ErrNotPublished = errors.New("project is not published")

// Project is a portfolio entry. Publish state is a boolean plus timestamp
// pair: IsPublished=true requires a non-nil PublishedAt, IsPublished=false a
// nil one. Publish/Unpublish are the only legal transitions.
type Project struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Title            string     `json:"title" bson:"title"`
	Slug             string     `json:"slug" bson:"slug"`
	Description      string     `json:"description" bson:"description"`
	ShortDescription string     `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Client           string     `json:"client,omitempty" bson:"client,omitempty"`
	Year             *int       `json:"year,omitempty" bson:"year,omitempty"`
	Location         string     `json:"location,omitempty" bson:"location,omitempty"`
	Area             string     `json:"area,omitempty" bson:"area,omitempty"`
	CoverImage       string     `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Images           []string   `json:"images,omitempty" bson:"images,omitempty"`
	IsPublished      bool       `json:"is_published" bson:"is_published"`
	PublishedAt      *time.Time `json:"published_at" bson:"published_at,omitempty"`
	SortOrder        int        `json:"sort_order" bson:"sort_order"`
	CategoryID       string     `json:"category_id" bson:"category_id"`
	Category         *Category  `json:"category,omitempty" bson:"-"`
	CreatedAt        time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" bson:"updated_at"`
}

// Publish moves the project to the published state, stamping PublishedAt.
func (p *Project) Publish(now time.Time) error {
	if p.IsPublished {
		return ErrAlreadyPublished
	}
	p.IsPublished = true
	p.PublishedAt = &now
	return nil
}

// Unpublish moves the project back to draft, clearing PublishedAt.
func (p *Project) Unpublish() error {
	if !p.IsPublished {
		return ErrNotPublished
	}
	p.IsPublished = false
	p.PublishedAt = nil
	return nil
}
