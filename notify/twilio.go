package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"reservation-service/i18n"
)

// MessageAPI is the part of the Twilio REST API the texter uses.
type MessageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioTexter texts the guest a confirmation that the reservation arrived.
// Contact messages carry no phone number and are ignored.
type TwilioTexter struct {
	api     MessageAPI
	from    string
	catalog *i18n.Catalog
}

func NewTwilioTexter(accountSid, authToken, from string, catalog *i18n.Catalog) *TwilioTexter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return newTwilioTexter(client.Api, from, catalog)
}

func newTwilioTexter(api MessageAPI, from string, catalog *i18n.Catalog) *TwilioTexter {
	return &TwilioTexter{api: api, from: from, catalog: catalog}
}

func (t *TwilioTexter) Notify(_ context.Context, e Event) error {
	if e.Kind != ReservationCreated || e.Reservation == nil {
		return nil
	}
	r := e.Reservation
	body := fmt.Sprintf(t.catalog.Messages(e.Locale).T("sms_reservation_received"), r.Guests, r.Date, r.Time)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(r.Phone)
	params.SetFrom(t.from)
	params.SetBody(body)

	if _, err := t.api.CreateMessage(params); err != nil {
		return fmt.Errorf("error sending sms: %w", err)
	}
	return nil
}
