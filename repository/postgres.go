package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reservation-service/models"
)

// PostgresStore keeps the same records in Postgres through GORM.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates or updates the reservations and contacts tables.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return wrap("migrate", s.db.WithContext(ctx).AutoMigrate(&models.Reservation{}, &models.ContactMessage{}))
}

func (s *PostgresStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	return wrap("insert reservation", s.db.WithContext(ctx).Create(r).Error)
}

func (s *PostgresStore) ListReservations(ctx context.Context, page models.Page) ([]models.Reservation, int64, error) {
	reservations := []models.Reservation{}
	total, err := s.findPage(ctx, &models.Reservation{}, page, &reservations)
	if err != nil {
		return nil, 0, wrap("list reservations", err)
	}
	return reservations, total, nil
}

func (s *PostgresStore) CreateContact(ctx context.Context, c *models.ContactMessage) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	return wrap("insert contact", s.db.WithContext(ctx).Create(c).Error)
}

func (s *PostgresStore) ListContacts(ctx context.Context, page models.Page) ([]models.ContactMessage, int64, error) {
	contacts := []models.ContactMessage{}
	total, err := s.findPage(ctx, &models.ContactMessage{}, page, &contacts)
	if err != nil {
		return nil, 0, wrap("list contacts", err)
	}
	return contacts, total, nil
}

func (s *PostgresStore) findPage(ctx context.Context, model interface{}, page models.Page, out interface{}) (int64, error) {
	var total int64
	db := s.db.WithContext(ctx)
	if err := db.Model(model).Count(&total).Error; err != nil {
		return 0, err
	}
	err := pageQuery(db, model, page).Find(out).Error
	return total, err
}

// pageQuery orders newest first; id breaks ties between rows created in the
// same instant.
func pageQuery(db *gorm.DB, model interface{}, page models.Page) *gorm.DB {
	return db.Model(model).
		Order("created_at DESC").
		Order("id DESC").
		Offset(int(page.Skip())).
		Limit(page.Limit)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("ping postgres", err)
	}
	return wrap("ping postgres", sqlDB.PingContext(ctx))
}

func (s *PostgresStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("close postgres", err)
	}
	return wrap("close postgres", sqlDB.Close())
}
