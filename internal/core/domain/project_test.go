package domain

import (
	"testing"
	"time"
)

func TestProject_Publish(t *testing.T) {
	p := Project{}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := p.Publish(now); err != nil {
		t.Fatalf("publishing a draft failed: %v", err)
	}
	if !p.IsPublished {
		t.Fatal("expected project to be published")
	}
	if p.PublishedAt == nil || !p.PublishedAt.Equal(now) {
		t.Fatalf("expected published_at %v, got %v", now, p.PublishedAt)
	}

	if err := p.Publish(now.Add(time.Hour)); err != ErrAlreadyPublished {
		t.Fatalf("expected ErrAlreadyPublished, got %v", err)
	}
	if !p.PublishedAt.Equal(now) {
		t.Fatal("rejected publish must not touch published_at")
	}
}

func TestProject_Unpublish(t *testing.T) {
	p := Project{}
	if err := p.Unpublish(); err != ErrNotPublished {
		t.Fatalf("expected ErrNotPublished for a draft, got %v", err)
	}

	if err := p.Publish(time.Now()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := p.Unpublish(); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	if p.IsPublished || p.PublishedAt != nil {
		t.Fatalf("expected draft state after unpublish, got published=%v at=%v", p.IsPublished, p.PublishedAt)
	}
}
