package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// SettingsRepository persists the contact-settings singleton. Get returns nil
// without error when no row exists yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ContactSettings, error)
	Create(ctx context.Context, settings *domain.ContactSettings) error
	Update(ctx context.Context, settings *domain.ContactSettings) error
}
