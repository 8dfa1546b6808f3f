package controllers

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"reservation-service/configs"
	"reservation-service/models"
	"reservation-service/notify"
	"reservation-service/responses"
	"reservation-service/utils"
)

// CreateReservation handles POST /api/reservations
func (c *Controller) CreateReservation() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		log := configs.LogWithContext("reservations", "create")
		locale := c.locale(r)
		msgs := c.Catalog.Messages(locale)

		var req models.ReservationRequest
		if code, err := decodeJSON(rw, r, &req); err != nil {
			log.WithError(err).Debug("Malformed reservation payload")
			if code == http.StatusRequestEntityTooLarge {
				errorResponse(rw, code, msgs.T("payload_too_large"))
				return
			}
			errorResponse(rw, code, msgs.T("invalid_payload"))
			return
		}

		reservation, errs := c.Schema.Reservation(req, msgs)
		if len(errs) > 0 {
			log.WithField("fields", errs).Info("Reservation rejected")
			validationResponse(rw, msgs.T("validation_failed"), errs)
			return
		}

		if err := c.Reservations.CreateReservation(ctx, &reservation); err != nil {
			c.serverErrorResponse(rw, r, log, err, msgs.T("reservation_error_message"))
			return
		}
		log.WithFields(logrus.Fields{"id": reservation.ID, "date": reservation.Date, "guests": reservation.Guests}).Info("Reservation stored")

		c.notify(ctx, notify.NewReservationEvent(reservation, locale))

		successResponse(rw, http.StatusCreated, responses.ReservationCreated{
			Success:     true,
			Message:     msgs.T("reservation_saved"),
			Reservation: reservation,
		})
	}
}

// GetReservations handles GET /api/reservations, newest first
func (c *Controller) GetReservations() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		page := utils.ParsePage(r)
		reservations, total, err := c.Reservations.ListReservations(ctx, page)
		if err != nil {
			c.serverErrorResponse(rw, r, configs.LogWithContext("reservations", "list"), err, c.Catalog.Messages(c.locale(r)).T("reservations_fetch_failed"))
			return
		}

		// Ensure we always return an empty array instead of null
		if reservations == nil {
			reservations = []models.Reservation{}
		}

		successResponse(rw, http.StatusOK, responses.ReservationList{
			Success:      true,
			Total:        total,
			Reservations: reservations,
			Pagination: responses.ReservationPagination{
				CurrentPage:       page.Page,
				TotalPages:        page.TotalPages(total),
				TotalReservations: total,
			},
		})
	}
}
