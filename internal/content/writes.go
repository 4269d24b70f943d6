package content

import (
	"context"
	"log/slog"

	"github.com/rizkyriyadi/noval-quex/internal/catalog"
)

// SubmitContactForm appends one contact submission to the store. Any
// failure is logged and reported in the Result; nothing is retried and
// no error escapes.
func (s *Service) SubmitContactForm(ctx context.Context, form ContactForm) Result {
	if s.store == nil {
		slog.Error("contact submission dropped: no store configured")
		return Result{Success: false, Message: msgContactFailed}
	}

	sub := catalog.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
	}
	if err := s.store.InsertContact(ctx, sub); err != nil {
		slog.Error("contact submission failed", "error", err)
		return Result{Success: false, Message: msgContactFailed}
	}

	return Result{Success: true, Message: msgContactOK}
}

// SubscribeNewsletter appends one newsletter subscription to the store.
func (s *Service) SubscribeNewsletter(ctx context.Context, email string) Result {
	if s.store == nil {
		slog.Error("newsletter subscription dropped: no store configured")
		return Result{Success: false, Message: msgSubscribeFailed}
	}

	sub := catalog.NewsletterSubscription{Email: email}
	if err := s.store.InsertSubscription(ctx, sub); err != nil {
		slog.Error("newsletter subscription failed", "error", err)
		return Result{Success: false, Message: msgSubscribeFailed}
	}

	return Result{Success: true, Message: msgSubscribeOK}
}
