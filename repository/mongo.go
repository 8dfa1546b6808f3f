package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reservation-service/models"
)

// newestFirst orders by creation time; _id breaks ties between inserts in
// the same millisecond since ObjectIDs grow monotonically per process.
var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

type MongoStore struct {
	client       *mongo.Client
	reservations *mongo.Collection
	contacts     *mongo.Collection
}

func NewMongoStore(client *mongo.Client, reservations, contacts *mongo.Collection) *MongoStore {
	return &MongoStore{client: client, reservations: reservations, contacts: contacts}
}

// EnsureIndexes creates the createdAt index both listings sort on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}
	if _, err := s.reservations.Indexes().CreateOne(ctx, model); err != nil {
		return wrap("create reservations index", err)
	}
	if _, err := s.contacts.Indexes().CreateOne(ctx, model); err != nil {
		return wrap("create contacts index", err)
	}
	return nil
}

func (s *MongoStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	r.ID = primitive.NewObjectID().Hex()
	r.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := s.reservations.InsertOne(ctx, r); err != nil {
		return wrap("insert reservation", err)
	}
	return nil
}

func (s *MongoStore) ListReservations(ctx context.Context, page models.Page) ([]models.Reservation, int64, error) {
	reservations := []models.Reservation{}
	total, err := s.findPage(ctx, s.reservations, page, &reservations)
	if err != nil {
		return nil, 0, wrap("list reservations", err)
	}
	return reservations, total, nil
}

func (s *MongoStore) CreateContact(ctx context.Context, c *models.ContactMessage) error {
	c.ID = primitive.NewObjectID().Hex()
	c.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := s.contacts.InsertOne(ctx, c); err != nil {
		return wrap("insert contact", err)
	}
	return nil
}

func (s *MongoStore) ListContacts(ctx context.Context, page models.Page) ([]models.ContactMessage, int64, error) {
	contacts := []models.ContactMessage{}
	total, err := s.findPage(ctx, s.contacts, page, &contacts)
	if err != nil {
		return nil, 0, wrap("list contacts", err)
	}
	return contacts, total, nil
}

func (s *MongoStore) findPage(ctx context.Context, coll *mongo.Collection, page models.Page, out interface{}) (int64, error) {
	findOptions := options.Find().
		SetSort(newestFirst).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return 0, err
	}

	return coll.CountDocuments(ctx, bson.M{})
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return wrap("ping mongodb", s.client.Ping(ctx, nil))
}

func (s *MongoStore) Close(ctx context.Context) error {
	return wrap("disconnect mongodb", s.client.Disconnect(ctx))
}
