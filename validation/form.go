package validation

import (
	"strings"

	"reservation-service/i18n"
)

// Fields is a form's raw text input keyed by field name.
type Fields map[string]string

// Rule is one check on a form. Rules for the same field run in order and
// stop at the first failure, so a field gets at most one message.
type Rule struct {
	Field string
	Key   string
	Check func(Fields) bool
}

// ReservationRules is the client-side rule table for the reservation form.
var ReservationRules = []Rule{
	{Field: "name", Key: "name_required", Check: required("name")},
	{Field: "email", Key: "email_required", Check: required("email")},
	{Field: "email", Key: "invalid_email", Check: func(f Fields) bool { return ValidEmail(strings.TrimSpace(f["email"])) }},
	{Field: "phone", Key: "phone_required", Check: required("phone")},
	{Field: "phone", Key: "invalid_phone", Check: func(f Fields) bool { return ValidatePhone(f["countryCode"], f["phone"]) }},
	{Field: "date", Key: "date_required", Check: required("date")},
	{Field: "time", Key: "time_required", Check: required("time")},
	{Field: "guests", Key: "guests_required", Check: func(f Fields) bool {
		n, ok := GuestNumber(f["guests"])
		return ok && n >= 1
	}},
}

// ContactRules is the client-side rule table for the contact form.
var ContactRules = []Rule{
	{Field: "name", Key: "name_required", Check: required("name")},
	{Field: "email", Key: "email_required", Check: required("email")},
	{Field: "email", Key: "invalid_email", Check: func(f Fields) bool { return ValidEmail(strings.TrimSpace(f["email"])) }},
	{Field: "message", Key: "message_required", Check: required("message")},
}

// Evaluate runs every rule against f and returns field -> message for each
// failing field. An empty map means the form is acceptable.
func Evaluate(rules []Rule, f Fields, msgs i18n.Messages) map[string]string {
	errs := map[string]string{}
	for _, r := range rules {
		if _, failed := errs[r.Field]; failed {
			continue
		}
		if !r.Check(f) {
			errs[r.Field] = msgs.T(r.Key)
		}
	}
	return errs
}

func ValidateReservationForm(f Fields, msgs i18n.Messages) map[string]string {
	return Evaluate(ReservationRules, f, msgs)
}

func ValidateContactForm(f Fields, msgs i18n.Messages) map[string]string {
	return Evaluate(ContactRules, f, msgs)
}

func required(field string) func(Fields) bool {
	return func(f Fields) bool { return !blank(f[field]) }
}
