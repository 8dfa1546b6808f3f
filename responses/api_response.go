package responses

import (
	"reservation-service/models"
)

// ErrorResponse is the body of every 4xx and 5xx answer. Errors maps a field
// name to its message; Details is only filled in development.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Details string            `json:"details,omitempty"`
}

type ReservationCreated struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Reservation models.Reservation `json:"reservation"`
}

type ReservationPagination struct {
	CurrentPage       int   `json:"currentPage"`
	TotalPages        int   `json:"totalPages"`
	TotalReservations int64 `json:"totalReservations"`
}

type ReservationList struct {
	Success      bool                  `json:"success"`
	Total        int64                 `json:"total"`
	Reservations []models.Reservation  `json:"reservations"`
	Pagination   ReservationPagination `json:"pagination"`
}

type ContactSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ContactCreated struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    ContactSummary `json:"data"`
}

type ContactPagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalContacts int64 `json:"totalContacts"`
}

type ContactList struct {
	Success    bool                    `json:"success"`
	Data       []models.ContactMessage `json:"data"`
	Pagination ContactPagination       `json:"pagination"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
