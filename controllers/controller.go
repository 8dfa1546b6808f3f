package controllers

import (
	"context"
	"net/http"
	"time"

	"reservation-service/i18n"
	"reservation-service/notify"
	"reservation-service/repository"
	"reservation-service/validation"
)

const (
	requestTimeout = 10 * time.Second
	// maxBodyBytes is far above the largest valid form.
	maxBodyBytes = 64 << 10
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller holds what the HTTP handlers share. Notifier may be nil.
type Controller struct {
	Reservations  repository.ReservationStore
	Contacts      repository.ContactStore
	Store         Pinger
	Schema        *validation.Schema
	Notifier      notify.Notifier
	Catalog       *i18n.Catalog
	DefaultLocale i18n.Locale
	DevMode       bool
}

func (c *Controller) locale(r *http.Request) i18n.Locale {
	return c.Catalog.FromRequest(r, c.DefaultLocale)
}

// notify runs the notifiers after a record is stored. Failures are logged by
// the dispatcher and never change the response.
func (c *Controller) notify(ctx context.Context, e notify.Event) {
	if c.Notifier == nil {
		return
	}
	_ = c.Notifier.Notify(ctx, e)
}
