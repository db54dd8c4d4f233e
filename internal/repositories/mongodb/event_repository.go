package mongodb

import (
	"context"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.EventRepository = (*EventRepository)(nil)

var eventSort = bson.D{
	{Key: "order", Value: 1},
	{Key: "eventDate", Value: -1},
	{Key: "createdAt", Value: -1},
}

type EventRepository struct {
	store documentStore[models.Event]
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{store: newDocumentStore[models.Event](db, "events")}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	stamp(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	return r.store.insert(ctx, event)
}

func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return r.store.findByID(ctx, id)
}

// FindAll includes deactivated posters for the admin panel
func (r *EventRepository) FindAll(ctx context.Context) ([]*models.Event, error) {
	return r.store.find(ctx, bson.M{}, options.Find().SetSort(eventSort))
}

func (r *EventRepository) FindActive(ctx context.Context, limit int) ([]*models.Event, error) {
	opts := options.Find().SetSort(eventSort).SetLimit(int64(limit))
	return r.store.find(ctx, bson.M{"isActive": true}, opts)
}

func (r *EventRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.Event, error) {
	return r.store.update(ctx, id, fields)
}

func (r *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
