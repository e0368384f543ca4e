package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// ProjectQuery is the caller-facing shape of a paginated project listing.
type ProjectQuery struct {
	CategoryID string
	Search     string
	Pagination domain.Pagination
}

// CreateProjectInput carries the fields accepted on project creation.
// Projects are always created unpublished.
type CreateProjectInput struct {
	Title            string
	Slug             string
	Description      string
	ShortDescription string
	Client           string
	Year             *int
	Location         string
	Area             string
	CoverImage       string
	Images           []string
	SortOrder        int
	CategoryID       string
}

// UpdateProjectInput carries a partial update: nil fields are left untouched.
// Publish state is not updatable here; use Publish/Unpublish.
type UpdateProjectInput struct {
	Title            *string
	Slug             *string
	Description      *string
	ShortDescription *string
	Client           *string
	Year             *int
	Location         *string
	Area             *string
	CoverImage       *string
	Images           []string
	SortOrder        *int
	CategoryID       *string
}

type ProjectService interface {
	ListPublished(ctx context.Context, q ProjectQuery) (domain.Paginated[domain.Project], error)
	ListAll(ctx context.Context, q ProjectQuery) (domain.Paginated[domain.Project], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (*domain.Project, error)
	Unpublish(ctx context.Context, id string) (*domain.Project, error)
}
