package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// CreateUserInput carries the fields accepted on staff account creation.
// Password is the plaintext credential; it is hashed before persistence and
// never stored or returned as supplied.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// UpdateUserInput carries a partial update: nil fields are left untouched.
// A non-nil Password is re-hashed.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Name     *string
	Role     *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	EnsureAdmin(ctx context.Context, email, password, name string) error
}
