package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// CategoryRepository defines the interface for category persistence.
// Lookups taking activeOnly filter out inactive rows when true, so slugs of
// deactivated categories behave as absent for public callers.
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}
