package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// CreateCategoryInput carries the fields accepted on category creation.
// IsActive defaults to true when nil.
type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
	IsActive    *bool
}

// UpdateCategoryInput carries a partial update: nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
	SortOrder   *int
	IsActive    *bool
}

type CategoryService interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
	ListAll(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
