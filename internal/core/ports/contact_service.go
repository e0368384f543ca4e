package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// CreateContactInput carries a public contact-form submission.
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ContactService interface {
	Create(ctx context.Context, in CreateContactInput) (*domain.ContactRequest, error)
	List(ctx context.Context, filter ContactListFilter) (domain.Paginated[domain.ContactRequest], error)
	GetByID(ctx context.Context, id string) (*domain.ContactRequest, error)
	MarkAsRead(ctx context.Context, id string) (*domain.ContactRequest, error)
	MarkAsUnread(ctx context.Context, id string) (*domain.ContactRequest, error)
	Delete(ctx context.Context, id string) error
}
