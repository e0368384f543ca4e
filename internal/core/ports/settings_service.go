package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// UpdateContactSettingsInput carries a partial update of the settings
// singleton: nil fields are left untouched, empty strings clear a field.
type UpdateContactSettingsInput struct {
	Phone   *string
	Email   *string
	Address *string
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.ContactSettings, error)
	Update(ctx context.Context, in UpdateContactSettingsInput) (*domain.ContactSettings, error)
}
