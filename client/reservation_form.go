package client

import (
	"context"

	"reservation-service/i18n"
	"reservation-service/models"
	"reservation-service/notify"
	"reservation-service/validation"
)

// ReservationSubmitter sends a reservation to the server. *APIClient
// satisfies it.
type ReservationSubmitter interface {
	CreateReservation(ctx context.Context, req models.ReservationRequest, locale i18n.Locale, idempotencyKey string) (models.Reservation, error)
}

// ReservationForm is the booking dialog. Fields are name, email,
// countryCode, phone, date, time, guests and specialRequests.
type ReservationForm struct {
	*form
	api      ReservationSubmitter
	notifier notify.Notifier
}

// NewReservationForm builds an open, empty form. notifier may be nil; when
// set it runs after the server accepted the reservation and a failure only
// shows a warning.
func NewReservationForm(api ReservationSubmitter, notifier notify.Notifier, cfg FormConfig) *ReservationForm {
	cfg = cfg.withDefaults()
	defaults := validation.Fields{
		"name":            "",
		"email":           "",
		"countryCode":     cfg.DefaultCountryCode,
		"phone":           "",
		"date":            "",
		"time":            "",
		"guests":          cfg.DefaultGuests,
		"specialRequests": "",
	}
	keys := messageKeys{
		fixErrors: "reservation_fix_errors",
		success:   "reservation_success_message",
		failure:   "reservation_error_message",
	}
	return &ReservationForm{
		form:     newForm(cfg, defaults, keys, validation.ValidateReservationForm),
		api:      api,
		notifier: notifier,
	}
}

// Submit validates the form and, when it passes, sends it once. It returns
// ErrSubmitInProgress while an earlier call is still running.
func (f *ReservationForm) Submit(ctx context.Context) (State, error) {
	return f.submit(ctx, f.send)
}

func (f *ReservationForm) send(ctx context.Context, v validation.Fields, key string) (string, error) {
	guests, _ := validation.GuestNumber(v["guests"])
	req := models.ReservationRequest{
		Name:            v["name"],
		Email:           v["email"],
		CountryCode:     v["countryCode"],
		Phone:           v["phone"],
		Date:            v["date"],
		Time:            v["time"],
		Guests:          models.GuestCount(guests),
		SpecialRequests: v["specialRequests"],
	}
	reservation, err := f.api.CreateReservation(ctx, req, f.cfg.Locale, key)
	if err != nil {
		return "", err
	}
	if f.notifier != nil {
		if err := f.notifier.Notify(ctx, notify.NewReservationEvent(reservation, f.cfg.Locale)); err != nil {
			return f.msgs.T("reservation_notify_warning"), nil
		}
	}
	return "", nil
}
