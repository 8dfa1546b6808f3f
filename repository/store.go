// Package repository persists reservations and contact messages. Every
// backend stores records append-only and lists them newest first.
package repository

import (
	"context"
	"fmt"

	"reservation-service/models"
)

const (
	ReservationsCollection = "reservations"
	ContactsCollection     = "contacts"
)

type ReservationStore interface {
	// CreateReservation assigns ID and CreatedAt and inserts r.
	CreateReservation(ctx context.Context, r *models.Reservation) error
	// ListReservations returns one page, newest first, and the total count.
	ListReservations(ctx context.Context, page models.Page) ([]models.Reservation, int64, error)
}

type ContactStore interface {
	CreateContact(ctx context.Context, c *models.ContactMessage) error
	ListContacts(ctx context.Context, page models.Page) ([]models.ContactMessage, int64, error)
}

// Store is a complete backend.
type Store interface {
	ReservationStore
	ContactStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// PersistenceError wraps a backend failure with the operation that hit it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
