package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"reservation-service/models"
)

// MemoryStore keeps records in process memory. It backs STORE_DRIVER=memory
// for local development and the HTTP tests; nothing survives a restart.
type MemoryStore struct {
	mu           sync.RWMutex
	reservations []models.Reservation
	contacts     []models.ContactMessage
	now          func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

func (s *MemoryStore) CreateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	r.CreatedAt = s.now()
	s.reservations = append(s.reservations, *r)
	return nil
}

func (s *MemoryStore) ListReservations(_ context.Context, page models.Page) ([]models.Reservation, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestPage(s.reservations, page), int64(len(s.reservations)), nil
}

func (s *MemoryStore) CreateContact(_ context.Context, c *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = s.now()
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *MemoryStore) ListContacts(_ context.Context, page models.Page) ([]models.ContactMessage, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestPage(s.contacts, page), int64(len(s.contacts)), nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }

// newestPage walks records from the end, since they are appended in
// creation order.
func newestPage[T any](records []T, page models.Page) []T {
	out := []T{}
	skip := page.Skip()
	if skip < 0 || skip >= int64(len(records)) {
		return out
	}
	start := len(records) - 1 - int(skip)
	for i := start; i >= 0 && len(out) < page.Limit; i-- {
		out = append(out, records[i])
	}
	return out
}
