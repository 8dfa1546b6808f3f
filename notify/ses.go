package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"reservation-service/i18n"
)

// SESAPI is the part of *sesv2.Client the mailer uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer emails the restaurant inbox about new reservations and contact
// messages. Replies go straight to the visitor.
type SESMailer struct {
	api       SESAPI
	from      string
	to        string
	templates map[EventKind]string
	msgs      i18n.Messages
}

// NewSESMailer builds a mailer. templates maps an event kind to an SES
// template name; kinds without one get an inline rendered body. msgs is the
// restaurant staff's language.
func NewSESMailer(api SESAPI, from, to string, templates map[EventKind]string, msgs i18n.Messages) *SESMailer {
	return &SESMailer{api: api, from: from, to: to, templates: templates, msgs: msgs}
}

func (m *SESMailer) Notify(ctx context.Context, e Event) error {
	content, err := m.content(e)
	if err != nil {
		return err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination:      &types.Destination{ToAddresses: []string{m.to}},
		Content:          content,
	}
	if replyTo := templateData(e)["email"]; replyTo != "" {
		input.ReplyToAddresses = []string{replyTo}
	}

	if _, err := m.api.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}

func (m *SESMailer) content(e Event) (*types.EmailContent, error) {
	if name := m.templates[e.Kind]; name != "" {
		data, err := json.Marshal(templateData(e))
		if err != nil {
			return nil, fmt.Errorf("encode template data: %w", err)
		}
		return &types.EmailContent{Template: &types.Template{
			TemplateName: aws.String(name),
			TemplateData: aws.String(string(data)),
		}}, nil
	}

	if e.Reservation == nil && e.Contact == nil {
		return nil, errors.New("event carries no record")
	}
	rendered, err := renderEmail(e, m.msgs)
	if err != nil {
		return nil, err
	}
	return &types.EmailContent{Simple: &types.Message{
		Subject: &types.Content{Data: aws.String(rendered.Subject), Charset: aws.String("UTF-8")},
		Body: &types.Body{
			Text: &types.Content{Data: aws.String(rendered.Text), Charset: aws.String("UTF-8")},
			Html: &types.Content{Data: aws.String(rendered.HTML), Charset: aws.String("UTF-8")},
		},
	}}, nil
}
