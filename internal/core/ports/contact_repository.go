package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// ContactListFilter describes a paginated contact-request query. IsRead is an
// optional equality filter; nil means no filtering. Results are ordered by
// created_at desc.
type ContactListFilter struct {
	IsRead     *bool
	Pagination domain.Pagination
}

// ContactRepository defines the interface for contact-request persistence.
type ContactRepository interface {
	List(ctx context.Context, filter ContactListFilter) ([]domain.ContactRequest, int64, error)
	FindByID(ctx context.Context, id string) (*domain.ContactRequest, error)
	Create(ctx context.Context, contact *domain.ContactRequest) error
	Update(ctx context.Context, contact *domain.ContactRequest) error
	Delete(ctx context.Context, id string) error
}
