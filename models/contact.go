package models

import (
	"strings"
	"time"
)

// ContactMessage is a general inquiry sent through the contact form.
type ContactMessage struct {
	ID        string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" bson:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email     string    `json:"email" bson:"email" gorm:"size:254;not null" validate:"required,simpleemail,emaildomain"`
	Message   string    `json:"message" bson:"message" gorm:"type:text;not null" validate:"required,max=2000"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index;not null"`
}

func (ContactMessage) TableName() string { return "contacts" }

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r ContactRequest) ContactMessage() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Message: strings.TrimSpace(r.Message),
	}
}
