// Package notify delivers best-effort side effects after a record has been
// stored: email to the restaurant, SMS to the guest, and an event on Redis.
// A failed notification never undoes the stored record.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"reservation-service/i18n"
	"reservation-service/models"
)

type EventKind string

const (
	ReservationCreated EventKind = "reservation.created"
	ContactReceived    EventKind = "contact.received"
)

// Event describes a freshly stored record. Locale is the language the
// visitor used, for messages addressed to them.
type Event struct {
	Kind        EventKind              `json:"kind"`
	Locale      i18n.Locale            `json:"locale"`
	Reservation *models.Reservation    `json:"reservation,omitempty"`
	Contact     *models.ContactMessage `json:"contact,omitempty"`
	OccurredAt  time.Time              `json:"occurredAt"`
}

func NewReservationEvent(r models.Reservation, locale i18n.Locale) Event {
	return Event{Kind: ReservationCreated, Locale: locale, Reservation: &r, OccurredAt: time.Now().UTC()}
}

func NewContactEvent(c models.ContactMessage, locale i18n.Locale) Event {
	return Event{Kind: ContactReceived, Locale: locale, Contact: &c, OccurredAt: time.Now().UTC()}
}

type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, e Event) error

func (f NotifierFunc) Notify(ctx context.Context, e Event) error {
	return f(ctx, e)
}

// Error reports which channel failed to deliver.
type Error struct {
	Channel string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("notify %s: %v", e.Channel, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type channel struct {
	name     string
	notifier Notifier
}

// Dispatcher fans an event out to every registered channel in order. Each
// failure is logged and returned joined; later channels still run.
type Dispatcher struct {
	channels []channel
	log      *logrus.Entry
}

func NewDispatcher(log *logrus.Entry) *Dispatcher {
	return &Dispatcher{log: log}
}

func (d *Dispatcher) Register(name string, n Notifier) {
	d.channels = append(d.channels, channel{name: name, notifier: n})
}

// Channels returns the registered channel names.
func (d *Dispatcher) Channels() []string {
	names := make([]string, 0, len(d.channels))
	for _, c := range d.channels {
		names = append(names, c.name)
	}
	return names
}

func (d *Dispatcher) Notify(ctx context.Context, e Event) error {
	var errs []error
	for _, c := range d.channels {
		if err := c.notifier.Notify(ctx, e); err != nil {
			d.log.WithError(err).WithFields(logrus.Fields{
				"channel": c.name,
				"event":   e.Kind,
			}).Error("Notification failed")
			errs = append(errs, &Error{Channel: c.name, Err: err})
			continue
		}
		d.log.WithFields(logrus.Fields{"channel": c.name, "event": e.Kind}).Debug("Notification sent")
	}
	return errors.Join(errs...)
}
