package ports

import (
	"context"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// Notifier delivers a formatted message about a new contact request to one
// outbound channel. Failures are the caller's to log; they are never retried.
type Notifier interface {
	Channel() string
	Notify(ctx context.Context, contact domain.ContactRequest) error
}

// NotificationQueue accepts contact requests for asynchronous, fire-and-forget
// notification dispatch. Enqueue must never block the calling request for
// longer than a channel send.
type NotificationQueue interface {
	Enqueue(contact domain.ContactRequest)
}
