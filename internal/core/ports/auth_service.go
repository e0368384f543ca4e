package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// AuthService implements the authentication handshake. Login is the only path
// that mints tokens; Profile resolves the authenticated subject's public
// record.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
