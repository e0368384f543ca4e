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

type contactService struct {
	repo  ports.ContactRepository
	queue ports.NotificationQueue
	log   zerolog.Logger
}

// NewContactService returns a ContactService implementation. queue may be nil,
// in which case notifications are skipped entirely.
func NewContactService(repo ports.ContactRepository, queue ports.NotificationQueue, log zerolog.Logger) ports.ContactService {
	return &contactService{repo: repo, queue: queue, log: log}
}

// Create persists a public contact-form submission and hands it to the
// notification queue. Dispatch is fire-and-forget: delivery failures never
// fail or delay this call.
func (s *contactService) Create(ctx context.Context, in ports.CreateContactInput) (*domain.ContactRequest, error) {
	contact := &domain.ContactRequest{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.log.Info().Str("contact_id", contact.ID).Msg("contact request received")

	if s.queue != nil {
		s.queue.Enqueue(*contact)
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context, filter ports.ContactListFilter) (domain.Paginated[domain.ContactRequest], error) {
	filter.Pagination.Normalize()

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.Paginated[domain.ContactRequest]{}, fmt.Errorf("list contacts: %w", err)
	}
	return domain.NewPaginated(items, total, filter.Pagination), nil
}

func (s *contactService) GetByID(ctx context.Context, id string) (*domain.ContactRequest, error) {
	return s.repo.FindByID(ctx, id)
}

// MarkAsRead flips the read flag. Idempotent: re-marking a read request
// succeeds without error.
func (s *contactService) MarkAsRead(ctx context.Context, id string) (*domain.ContactRequest, error) {
	return s.setRead(ctx, id, true)
}

// MarkAsUnread flips the read flag back. Idempotent like MarkAsRead.
func (s *contactService) MarkAsUnread(ctx context.Context, id string) (*domain.ContactRequest, error) {
	return s.setRead(ctx, id, false)
}

func (s *contactService) setRead(ctx context.Context, id string, read bool) (*domain.ContactRequest, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contact.IsRead = read
	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
