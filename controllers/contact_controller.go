package controllers

import (
	"context"
	"net/http"

	"reservation-service/configs"
	"reservation-service/models"
	"reservation-service/notify"
	"reservation-service/responses"
	"reservation-service/utils"
)

// SubmitContact handles POST /api/contact
func (c *Controller) SubmitContact() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		log := configs.LogWithContext("contact", "submit")
		locale := c.locale(r)
		msgs := c.Catalog.Messages(locale)

		var req models.ContactRequest
		if code, err := decodeJSON(rw, r, &req); err != nil {
			log.WithError(err).Debug("Malformed contact payload")
			if code == http.StatusRequestEntityTooLarge {
				errorResponse(rw, code, msgs.T("payload_too_large"))
				return
			}
			errorResponse(rw, code, msgs.T("invalid_payload"))
			return
		}

		contact, errs := c.Schema.Contact(req, msgs)
		if len(errs) > 0 {
			log.WithField("fields", errs).Info("Contact message rejected")
			validationResponse(rw, msgs.T("validation_failed"), errs)
			return
		}

		if err := c.Contacts.CreateContact(ctx, &contact); err != nil {
			c.serverErrorResponse(rw, r, log, err, msgs.T("contact_error_message"))
			return
		}
		log.WithField("id", contact.ID).Info("Contact message stored")

		c.notify(ctx, notify.NewContactEvent(contact, locale))

		successResponse(rw, http.StatusCreated, responses.ContactCreated{
			Success: true,
			Message: msgs.T("contact_success_message"),
			Data:    responses.ContactSummary{ID: contact.ID, Name: contact.Name, Email: contact.Email},
		})
	}
}

// GetContacts handles GET /api/contact, newest first
func (c *Controller) GetContacts() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		page := utils.ParsePage(r)
		contacts, total, err := c.Contacts.ListContacts(ctx, page)
		if err != nil {
			c.serverErrorResponse(rw, r, configs.LogWithContext("contact", "list"), err, c.Catalog.Messages(c.locale(r)).T("contacts_fetch_failed"))
			return
		}

		if contacts == nil {
			contacts = []models.ContactMessage{}
		}

		successResponse(rw, http.StatusOK, responses.ContactList{
			Success: true,
			Data:    contacts,
			Pagination: responses.ContactPagination{
				CurrentPage:   page.Page,
				TotalPages:    page.TotalPages(total),
				TotalContacts: total,
			},
		})
	}
}
