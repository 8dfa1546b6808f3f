package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Reservation is a table booking as persisted. Validation tags are checked
// at the persistence boundary before any insert.
type Reservation struct {
	ID              string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name            string    `json:"name" bson:"name" gorm:"size:50;not null" validate:"required,min=2,max=50,personname"`
	Email           string    `json:"email" bson:"email" gorm:"size:254;not null" validate:"required,simpleemail,emaildomain"`
	Phone           string    `json:"phone" bson:"phone" gorm:"size:16;not null" validate:"required,intlphone"`
	Date            string    `json:"date" bson:"date" gorm:"size:10;not null" validate:"required,datetime=2006-01-02"`
	Time            string    `json:"time" bson:"time" gorm:"size:5;not null" validate:"required,clocktime"`
	Guests          int       `json:"guests" bson:"guests" gorm:"not null" validate:"required,min=1,max=20"`
	SpecialRequests string    `json:"specialRequests" bson:"specialRequests" gorm:"size:200" validate:"max=200"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt" gorm:"index;not null"`
}

func (Reservation) TableName() string { return "reservations" }

// ReservationRequest is the body of POST /api/reservations.
type ReservationRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	CountryCode     string     `json:"countryCode,omitempty"`
	Phone           string     `json:"phone"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Guests          GuestCount `json:"guests"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	// Special is the field name older site revisions send.
	Special string `json:"special,omitempty"`
}

// Reservation converts the request into the record to persist. normalizePhone
// turns the dialing prefix plus local number into the stored phone format.
func (r ReservationRequest) Reservation(normalizePhone func(countryCode, phone string) string) Reservation {
	special := r.SpecialRequests
	if strings.TrimSpace(special) == "" {
		special = r.Special
	}
	return Reservation{
		Name:            strings.TrimSpace(r.Name),
		Email:           strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:           normalizePhone(strings.TrimSpace(r.CountryCode), strings.TrimSpace(r.Phone)),
		Date:            strings.TrimSpace(r.Date),
		Time:            strings.TrimSpace(r.Time),
		Guests:          int(r.Guests),
		SpecialRequests: strings.TrimSpace(special),
	}
}

// GuestCount accepts either a JSON number or a numeric string, since HTML
// select elements submit their value as text. Anything unparseable decodes
// to zero and is rejected by validation rather than by the decoder.
type GuestCount int

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*g = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		*g = 0
		return nil
	}
	*g = GuestCount(n)
	return nil
}
