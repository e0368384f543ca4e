package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

type stubSettingsRepo struct {
	settings *domain.ContactSettings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.ContactSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	clone := *r.settings
	return &clone, nil
}

func (r *stubSettingsRepo) Create(_ context.Context, settings *domain.ContactSettings) error {
	clone := *settings
	r.settings = &clone
	return nil
}

func (r *stubSettingsRepo) Update(_ context.Context, settings *domain.ContactSettings) error {
	clone := *settings
	r.settings = &clone
	return nil
}

func TestSettingsService_Get_CreatesDefault(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, zerolog.Nop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if settings.ID == "" {
		t.Fatal("expected generated id")
	}
	if settings.Phone != nil || settings.Email != nil || settings.Address != nil {
		t.Fatalf("expected empty defaults, got %+v", settings)
	}
	if repo.settings == nil {
		t.Fatal("default row must be persisted")
	}

	again, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.ID != settings.ID {
		t.Fatal("expected the same singleton row on subsequent reads")
	}
}

func TestSettingsService_Update_PartialAndClear(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, zerolog.Nop())

	phone := "+7 999 000-00-00"
	email := "studio@example.com"
	updated, err := svc.Update(context.Background(), ports.UpdateContactSettingsInput{Phone: &phone, Email: &email})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone == nil || *updated.Phone != phone {
		t.Fatalf("expected phone set, got %v", updated.Phone)
	}

	// nil leaves a field untouched, empty string clears it.
	empty := ""
	updated, err = svc.Update(context.Background(), ports.UpdateContactSettingsInput{Email: &empty})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != nil {
		t.Fatalf("expected email cleared, got %v", *updated.Email)
	}
	if updated.Phone == nil || *updated.Phone != phone {
		t.Fatalf("untouched phone changed: %v", updated.Phone)
	}
}
