package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/grafit-studio/portfolio-cms/internal/core/domain"
)

// EmailNotifier records contact requests destined for an email inbox.
// TODO: wire an SMTP sender; until then delivery is log-only.
type EmailNotifier struct {
	to  string
	log zerolog.Logger
}

func NewEmailNotifier(to string, log zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{to: to, log: log}
}

func (e *EmailNotifier) Channel() string { return "email" }

func (e *EmailNotifier) Notify(ctx context.Context, contact domain.ContactRequest) error {
	e.log.Info().
		Str("contact_id", contact.ID).
		Str("to", e.to).
		Msg("email notification queued for delivery")
	return nil
}
