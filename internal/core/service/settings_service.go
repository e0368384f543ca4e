package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

type settingsService struct {
	repo ports.SettingsRepository
	log  zerolog.Logger
}

// NewSettingsService returns a SettingsService implementation.
func NewSettingsService(repo ports.SettingsRepository, log zerolog.Logger) ports.SettingsService {
	return &settingsService{repo: repo, log: log}
}

// Get returns the contact-settings singleton, creating an empty default row
// on first access.
func (s *settingsService) Get(ctx context.Context) (*domain.ContactSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if settings != nil {
		return settings, nil
	}

	now := time.Now().UTC()
	settings = &domain.ContactSettings{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}
	s.log.Info().Msg("default contact settings created")
	return settings, nil
}

// Update applies only the provided fields. Empty strings clear a field back
// to null.
func (s *settingsService) Update(ctx context.Context, in ports.UpdateContactSettingsInput) (*domain.ContactSettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.Phone = mergeNullable(settings.Phone, in.Phone)
	settings.Email = mergeNullable(settings.Email, in.Email)
	settings.Address = mergeNullable(settings.Address, in.Address)
	settings.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}

func mergeNullable(current *string, update *string) *string {
	if update == nil {
		return current
	}
	if *update == "" {
		return nil
	}
	return update
}
