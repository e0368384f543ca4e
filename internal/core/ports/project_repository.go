package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// ProjectListFilter describes a paginated project query. Search applies a
// case-insensitive substring match whose column set depends on the surface:
// published listings match title, description and short description; admin
// listings match title and description only. CategoryID is an equality
// filter. Sorting is fixed per surface: published listings order by
// sort_order asc, published_at desc; admin listings by sort_order asc,
// created_at desc.
type ProjectListFilter struct {
	CategoryID    string
	Search        string
	PublishedOnly bool
	Pagination    domain.Pagination
}

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	List(ctx context.Context, filter ProjectListFilter) ([]domain.Project, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}
