package client

import (
	"context"

	"reservation-service/i18n"
	"reservation-service/models"
	"reservation-service/responses"
	"reservation-service/validation"
)

// ContactSubmitter sends a contact message to the server. *APIClient
// satisfies it.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, req models.ContactRequest, locale i18n.Locale, idempotencyKey string) (responses.ContactSummary, error)
}

// ContactForm is the contact section. Fields are name, email and message.
// The server sends the notification itself.
type ContactForm struct {
	*form
	api ContactSubmitter
}

func NewContactForm(api ContactSubmitter, cfg FormConfig) *ContactForm {
	defaults := validation.Fields{"name": "", "email": "", "message": ""}
	keys := messageKeys{
		fixErrors: "contact_fix_errors",
		success:   "contact_success_message",
		failure:   "contact_error_message",
	}
	return &ContactForm{
		form: newForm(cfg, defaults, keys, validation.ValidateContactForm),
		api:  api,
	}
}

func (f *ContactForm) Submit(ctx context.Context) (State, error) {
	return f.submit(ctx, func(ctx context.Context, v validation.Fields, key string) (string, error) {
		_, err := f.api.SubmitContact(ctx, models.ContactRequest{
			Name:    v["name"],
			Email:   v["email"],
			Message: v["message"],
		}, f.cfg.Locale, key)
		return "", err
	})
}
