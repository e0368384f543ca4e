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

type projectService struct {
	repo       ports.ProjectRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

// NewProjectService returns a ProjectService implementation. The category
// repository backs the cross-entity existence check on create/update.
func NewProjectService(repo ports.ProjectRepository, categories ports.CategoryRepository, log zerolog.Logger) ports.ProjectService {
	return &projectService{repo: repo, categories: categories, log: log}
}

// ListPublished returns the public, paginated listing of published projects.
func (s *projectService) ListPublished(ctx context.Context, q ports.ProjectQuery) (domain.Paginated[domain.Project], error) {
	return s.list(ctx, q, true)
}

// ListAll returns the admin listing over every project, drafts included.
func (s *projectService) ListAll(ctx context.Context, q ports.ProjectQuery) (domain.Paginated[domain.Project], error) {
	return s.list(ctx, q, false)
}

func (s *projectService) list(ctx context.Context, q ports.ProjectQuery, publishedOnly bool) (domain.Paginated[domain.Project], error) {
	q.Pagination.Normalize()

	items, total, err := s.repo.List(ctx, ports.ProjectListFilter{
		CategoryID:    q.CategoryID,
		Search:        q.Search,
		PublishedOnly: publishedOnly,
		Pagination:    q.Pagination,
	})
	if err != nil {
		return domain.Paginated[domain.Project]{}, fmt.Errorf("list projects: %w", err)
	}

	return domain.NewPaginated(items, total, q.Pagination), nil
}

// GetBySlug resolves a public slug. Unpublished projects are invisible here
// even when the slug matches.
func (s *projectService) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	project, err := s.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, project)
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, project)
	return project, nil
}

// Create inserts a project after resolving its category reference and
// checking slug uniqueness. An unresolvable category aborts the create with
// the category's not-found error; nothing is written.
func (s *projectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(ctx, in.Slug); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Slug:             in.Slug,
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Client:           in.Client,
		Year:             in.Year,
		Location:         in.Location,
		Area:             in.Area,
		CoverImage:       in.CoverImage,
		Images:           in.Images,
		SortOrder:        in.SortOrder,
		CategoryID:       in.CategoryID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.Info().Str("project_id", project.ID).Str("slug", project.Slug).Msg("project created")
	return project, nil
}

// Update applies only the provided fields onto the stored row. Category and
// slug changes re-run their respective checks.
func (s *projectService) Update(ctx context.Context, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		project.CategoryID = *in.CategoryID
	}
	if in.Slug != nil && *in.Slug != project.Slug {
		if err := s.checkSlugFree(ctx, *in.Slug); err != nil {
			return nil, err
		}
		project.Slug = *in.Slug
	}
	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.ShortDescription != nil {
		project.ShortDescription = *in.ShortDescription
	}
	if in.Client != nil {
		project.Client = *in.Client
	}
	if in.Year != nil {
		project.Year = in.Year
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Area != nil {
		project.Area = *in.Area
	}
	if in.CoverImage != nil {
		project.CoverImage = *in.CoverImage
	}
	if in.Images != nil {
		project.Images = in.Images
	}
	if in.SortOrder != nil {
		project.SortOrder = *in.SortOrder
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.log.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// Publish transitions a draft to published, stamping published_at. Publishing
// an already-published project is rejected.
func (s *projectService) Publish(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := project.Publish(time.Now().UTC()); err != nil {
		return nil, err
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("publish project: %w", err)
	}
	s.log.Info().Str("project_id", id).Msg("project published")
	return project, nil
}

// Unpublish transitions a published project back to draft, clearing
// published_at. Unpublishing a draft is rejected.
func (s *projectService) Unpublish(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := project.Unpublish(); err != nil {
		return nil, err
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("unpublish project: %w", err)
	}
	s.log.Info().Str("project_id", id).Msg("project unpublished")
	return project, nil
}

func (s *projectService) checkSlugFree(ctx context.Context, slug string) error {
	_, err := s.repo.FindBySlug(ctx, slug, false)
	if err == nil {
		return domain.ErrProjectSlugTaken
	}
	if !errors.Is(err, domain.ErrProjectNotFound) {
		return err
	}
	return nil
}

// attachCategory decorates a single project with its category for detail
// responses. A missing category is tolerated: the reference is left bare.
func (s *projectService) attachCategory(ctx context.Context, project *domain.Project) {
	category, err := s.categories.FindByID(ctx, project.CategoryID)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", project.ID).Str("category_id", project.CategoryID).Msg("category lookup failed")
		return
	}
	project.Category = category
}
