package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"

	"reservation-service/i18n"
)

const reservationText = `Name: {{.name}}
Email: {{.email}}
Phone: {{.phone}}
Date: {{.date}}
Time: {{.time}}
Guests: {{.guests}}
Special requests: {{.special}}
`

const reservationHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #b45309;">New Reservation</h2>
  <p><strong>Name:</strong> {{.name}}</p>
  <p><strong>Email:</strong> {{.email}}</p>
  <p><strong>Phone:</strong> {{.phone}}</p>
  <p><strong>Date:</strong> {{.date}} {{.time}}</p>
  <p><strong>Guests:</strong> {{.guests}}</p>
  {{if .special}}<div style="background: #f4f4f4; padding: 20px; margin: 20px 0;"><p style="margin: 0;">{{.special}}</p></div>{{end}}
</div>
`

const contactText = `Name: {{.name}}
Email: {{.email}}
Message: {{.message}}
`

const contactHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #b45309;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.name}}</p>
  <p><strong>Email:</strong> {{.email}}</p>
  <p><strong>Message:</strong></p>
  <div style="background: #f4f4f4; padding: 20px; margin: 20px 0;"><p style="margin: 0;">{{.message}}</p></div>
</div>
`

var (
	textTemplates = map[EventKind]*texttemplate.Template{
		ReservationCreated: texttemplate.Must(texttemplate.New("reservation").Parse(reservationText)),
		ContactReceived:    texttemplate.Must(texttemplate.New("contact").Parse(contactText)),
	}
	htmlTemplates = map[EventKind]*htmltemplate.Template{
		ReservationCreated: htmltemplate.Must(htmltemplate.New("reservation").Parse(reservationHTML)),
		ContactReceived:    htmltemplate.Must(htmltemplate.New("contact").Parse(contactHTML)),
	}
)

// templateData flattens an event into the parameters both the inline
// templates and provider-side templates receive.
func templateData(e Event) map[string]string {
	switch {
	case e.Reservation != nil:
		r := e.Reservation
		return map[string]string{
			"id":      r.ID,
			"name":    r.Name,
			"email":   r.Email,
			"phone":   r.Phone,
			"date":    r.Date,
			"time":    r.Time,
			"guests":  strconv.Itoa(r.Guests),
			"special": r.SpecialRequests,
		}
	case e.Contact != nil:
		c := e.Contact
		return map[string]string{
			"id":      c.ID,
			"name":    c.Name,
			"email":   c.Email,
			"message": c.Message,
		}
	}
	return map[string]string{}
}

type renderedEmail struct {
	Subject string
	Text    string
	HTML    string
}

func renderEmail(e Event, msgs i18n.Messages) (renderedEmail, error) {
	textTmpl, ok := textTemplates[e.Kind]
	if !ok {
		return renderedEmail{}, fmt.Errorf("no email template for %q", e.Kind)
	}
	data := templateData(e)

	var text, html bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return renderedEmail{}, fmt.Errorf("render text email: %w", err)
	}
	if err := htmlTemplates[e.Kind].Execute(&html, data); err != nil {
		return renderedEmail{}, fmt.Errorf("render html email: %w", err)
	}

	subjectKey := "email_subject_contact"
	if e.Kind == ReservationCreated {
		subjectKey = "email_subject_reservation"
	}
	return renderedEmail{
		Subject: fmt.Sprintf(msgs.T(subjectKey), data["name"]),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
