package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"reservation-service/i18n"
	"reservation-service/models"
)

// schemaMessages maps "<Struct>.<jsonField>.<tag>" to a catalog key.
var schemaMessages = map[string]string{
	"Reservation.name.required":        "name_required",
	"Reservation.name.min":             "name_length",
	"Reservation.name.max":             "name_length",
	"Reservation.name.personname":      "name_letters",
	"Reservation.email.required":       "email_required",
	"Reservation.email.simpleemail":    "invalid_email",
	"Reservation.email.emaildomain":    "email_domain",
	"Reservation.phone.required":       "phone_required",
	"Reservation.phone.intlphone":      "invalid_phone",
	"Reservation.date.required":        "date_required",
	"Reservation.date.datetime":        "invalid_date",
	"Reservation.time.required":        "time_required",
	"Reservation.time.clocktime":       "invalid_time",
	"Reservation.guests.required":      "guests_required",
	"Reservation.guests.min":           "guests_min",
	"Reservation.guests.max":           "guests_max",
	"Reservation.specialRequests.max":  "special_requests_length",
	"ContactMessage.name.required":     "name_required",
	"ContactMessage.name.max":          "name_too_long",
	"ContactMessage.email.required":    "email_required",
	"ContactMessage.email.simpleemail": "invalid_email",
	"ContactMessage.email.emaildomain": "email_domain",
	"ContactMessage.message.required":  "message_required",
	"ContactMessage.message.max":       "message_length",
}

// Schema validates records right before they are persisted.
type Schema struct {
	validate *validator.Validate
}

// NewSchema registers the custom tags. allowedEmailDomains restricts emails
// to those domains; leave it empty to accept any valid address.
func NewSchema(allowedEmailDomains []string) *Schema {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	domains := append([]string(nil), allowedEmailDomains...)
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return ValidName(fl.Field().String())
	})
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("emaildomain", func(fl validator.FieldLevel) bool {
		return EmailInDomains(fl.Field().String(), domains)
	})
	_ = v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return ValidInternationalPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return ValidClockTime(fl.Field().String())
	})

	return &Schema{validate: v}
}

// Reservation normalises req into a record and validates it. The returned
// map is empty when the record may be stored.
func (s *Schema) Reservation(req models.ReservationRequest, msgs i18n.Messages) (models.Reservation, map[string]string) {
	r := req.Reservation(NormalizePhone)
	return r, s.Check(r, msgs)
}

func (s *Schema) Contact(req models.ContactRequest, msgs i18n.Messages) (models.ContactMessage, map[string]string) {
	c := req.ContactMessage()
	return c, s.Check(c, msgs)
}

// Check validates a struct and maps each failing field to a localised message
// keyed by its JSON name.
func (s *Schema) Check(v interface{}, msgs i18n.Messages) map[string]string {
	errs := map[string]string{}
	err := s.validate.Struct(v)
	if err == nil {
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errs["_"] = msgs.T("field_invalid")
		return errs
	}
	for _, fe := range validationErrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		key, ok := schemaMessages[fe.Namespace()+"."+fe.Tag()]
		if !ok {
			key = "field_invalid"
		}
		errs[fe.Field()] = msgs.T(key)
	}
	return errs
}
