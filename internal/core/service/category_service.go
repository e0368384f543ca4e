package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

type categoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

// NewCategoryService returns a CategoryService implementation.
func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) ports.CategoryService {
	return &categoryService{repo: repo, log: log}
}

// ListActive returns active categories for the public site.
func (s *categoryService) ListActive(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx, true)
}

// ListAll returns every category, including inactive ones.
func (s *categoryService) ListAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx, false)
}

// GetBySlug resolves a public slug. Inactive categories are invisible here
// even when the slug matches.
func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.repo.FindBySlug(ctx, slug, true)
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a category after an advisory slug-uniqueness pre-check.
func (s *categoryService) Create(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	if err := s.checkSlugFree(ctx, in.Slug); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		SortOrder:   in.SortOrder,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("category created")
	return category, nil
}

// Update applies only the provided fields onto the stored row. A slug change
// re-runs the uniqueness check against other rows; updating a slug to its own
// current value is a no-op.
func (s *categoryService) Update(ctx context.Context, id string, in ports.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Slug != nil && *in.Slug != category.Slug {
		if err := s.checkSlugFree(ctx, *in.Slug); err != nil {
			return nil, err
		}
		category.Slug = *in.Slug
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete physically removes the category.
//
// TODO: refuse deletion while projects still reference the category; the
// check needs a count-by-category on the project repository.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func (s *categoryService) checkSlugFree(ctx context.Context, slug string) error {
	_, err := s.repo.FindBySlug(ctx, slug, false)
	if err == nil {
		return domain.ErrCategorySlugTaken
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return err
	}
	return nil
}
