package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
)

type stubContactRepo struct {
	contacts map[string]*domain.ContactRequest
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: make(map[string]*domain.ContactRequest)}
}

func (r *stubContactRepo) List(_ context.Context, filter ports.ContactListFilter) ([]domain.ContactRequest, int64, error) {
	matched := make([]domain.ContactRequest, 0)
	for _, c := range r.contacts {
		if filter.IsRead != nil && c.IsRead != *filter.IsRead {
			continue
		}
		matched = append(matched, *c)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.ContactRequest, error) {
	if c, ok := r.contacts[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrContactNotFound
}

func (r *stubContactRepo) Create(_ context.Context, contact *domain.ContactRequest) error {
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *stubContactRepo) Update(_ context.Context, contact *domain.ContactRequest) error {
	if _, ok := r.contacts[contact.ID]; !ok {
		return domain.ErrContactNotFound
	}
	clone := *contact
	r.contacts[contact.ID] = &clone
	return nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return domain.ErrContactNotFound
	}
	delete(r.contacts, id)
	return nil
}

type recordingQueue struct {
	enqueued []domain.ContactRequest
}

func (q *recordingQueue) Enqueue(contact domain.ContactRequest) {
	q.enqueued = append(q.enqueued, contact)
}

func TestContactService_Create_Enqueues(t *testing.T) {
	repo := newStubContactRepo()
	queue := &recordingQueue{}
	svc := NewContactService(repo, queue, zerolog.Nop())

	contact, err := svc.Create(context.Background(), ports.CreateContactInput{
		Name:    "Ivan",
		Email:   "ivan@example.com",
		Message: "Need a kitchen redesign",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if contact.ID == "" {
		t.Fatal("expected generated id")
	}
	if contact.IsRead {
		t.Fatal("new requests must start unread")
	}
	if len(queue.enqueued) != 1 || queue.enqueued[0].ID != contact.ID {
		t.Fatalf("expected one enqueued notification, got %+v", queue.enqueued)
	}
}

func TestContactService_Create_NilQueue(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateContactInput{Name: "A", Email: "a@b.c", Message: "hi"}); err != nil {
		t.Fatalf("create must succeed without a queue: %v", err)
	}
}

func TestContactService_MarkAsRead_Idempotent(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, nil, zerolog.Nop())

	contact, err := svc.Create(context.Background(), ports.CreateContactInput{Name: "A", Email: "a@b.c", Message: "hi"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.MarkAsRead(context.Background(), contact.ID)
	if err != nil || !first.IsRead {
		t.Fatalf("mark as read failed: %v %+v", err, first)
	}
	second, err := svc.MarkAsRead(context.Background(), contact.ID)
	if err != nil || !second.IsRead {
		t.Fatalf("re-marking a read request must succeed: %v %+v", err, second)
	}

	back, err := svc.MarkAsUnread(context.Background(), contact.ID)
	if err != nil || back.IsRead {
		t.Fatalf("mark as unread failed: %v %+v", err, back)
	}
}

func TestContactService_List_ReadFilter(t *testing.T) {
	repo := newStubContactRepo()
	svc := NewContactService(repo, nil, zerolog.Nop())

	a, _ := svc.Create(context.Background(), ports.CreateContactInput{Name: "A", Email: "a@b.c", Message: "one"})
	if _, err := svc.Create(context.Background(), ports.CreateContactInput{Name: "B", Email: "b@b.c", Message: "two"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.MarkAsRead(context.Background(), a.ID); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	read := true
	res, err := svc.List(context.Background(), ports.ContactListFilter{
		IsRead:     &read,
		Pagination: domain.Pagination{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 1 || len(res.Items) != 1 || res.Items[0].ID != a.ID {
		t.Fatalf("unexpected filtered result: %+v", res)
	}
}

func TestContactService_CreatedAtStamped(t *testing.T) {
	svc := NewContactService(newStubContactRepo(), nil, zerolog.Nop())

	before := time.Now().Add(-time.Second)
	contact, err := svc.Create(context.Background(), ports.CreateContactInput{Name: "A", Email: "a@b.c", Message: "hi"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if contact.CreatedAt.Before(before) {
		t.Fatalf("created_at not stamped: %v", contact.CreatedAt)
	}
}
