package client

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"reservation-service/i18n"
	"reservation-service/validation"
)

var (
	// ErrSubmitInProgress is returned while an earlier Submit is still
	// waiting for the server.
	ErrSubmitInProgress = errors.New("client: submission already in progress")
	// ErrFormClosed is returned by Submit after Close.
	ErrFormClosed = errors.New("client: form is closed")
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusPositive
	StatusNegative
)

// Status is the banner shown above a form.
type Status struct {
	Kind    StatusKind
	Message string
}

// View is a copy of everything a form renders.
type View struct {
	State   State
	Values  validation.Fields
	Errors  map[string]string
	Status  Status
	Warning string
	Open    bool
}

// FormConfig tunes a form. Zero values take the defaults below.
type FormConfig struct {
	// DefaultCountryCode preselects the dialing prefix. Default "+41".
	DefaultCountryCode string
	// DefaultGuests preselects the party size. Default "1".
	DefaultGuests string
	// DismissAfter is how long a success message stays before OnDismiss.
	// Default 1800ms.
	DismissAfter time.Duration
	// Locale of the visitor. Default German.
	Locale i18n.Locale
	// Catalog supplies messages. Default the embedded catalog.
	Catalog *i18n.Catalog
	// OnDismiss runs once the success message has been shown long enough.
	OnDismiss func()
	// NewKey returns the Idempotency-Key of one submission. Default uuid.
	NewKey func() string
}

const (
	DefaultCountryCode  = "+41"
	DefaultGuests       = "1"
	DefaultDismissAfter = 1800 * time.Millisecond
)

func (c FormConfig) withDefaults() FormConfig {
	if c.DefaultCountryCode == "" {
		c.DefaultCountryCode = DefaultCountryCode
	}
	if c.DefaultGuests == "" {
		c.DefaultGuests = DefaultGuests
	}
	if c.DismissAfter <= 0 {
		c.DismissAfter = DefaultDismissAfter
	}
	if c.Locale == "" {
		c.Locale = i18n.German
	}
	if c.Catalog == nil {
		c.Catalog = i18n.MustLoad(i18n.German)
	}
	if c.NewKey == nil {
		c.NewKey = uuid.NewString
	}
	return c
}

func copyFields(f validation.Fields) validation.Fields {
	out := make(validation.Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func copyErrors(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
