package mongodb

import (
	"context"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.PastorScheduleRepository = (*PastorScheduleRepository)(nil)

var scheduleSort = bson.D{
	{Key: "startDate", Value: 1},
	{Key: "order", Value: 1},
	{Key: "createdAt", Value: 1},
}

type PastorScheduleRepository struct {
	store documentStore[models.PastorSchedule]
}

func NewPastorScheduleRepository(db *mongo.Database) *PastorScheduleRepository {
	return &PastorScheduleRepository{store: newDocumentStore[models.PastorSchedule](db, "pastorschedules")}
}

func (r *PastorScheduleRepository) Create(ctx context.Context, schedule *models.PastorSchedule) error {
	stamp(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	return r.store.insert(ctx, schedule)
}

func (r *PastorScheduleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PastorSchedule, error) {
	return r.store.findByID(ctx, id)
}

func (r *PastorScheduleRepository) FindActive(ctx context.Context) ([]*models.PastorSchedule, error) {
	return r.store.find(ctx, bson.M{"isActive": true}, options.Find().SetSort(scheduleSort))
}

// FindActiveOverlapping matches entries starting or ending inside
// [start, end], or spanning all of it.
func (r *PastorScheduleRepository) FindActiveOverlapping(ctx context.Context, start, end time.Time) ([]*models.PastorSchedule, error) {
	within := bson.M{"$gte": start, "$lte": end}
	filter := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"startDate": within},
			bson.M{"endDate": within},
			bson.M{"startDate": bson.M{"$lte": start}, "endDate": bson.M{"$gte": end}},
		},
	}
	return r.store.find(ctx, filter, options.Find().SetSort(scheduleSort))
}

func (r *PastorScheduleRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.PastorSchedule, error) {
	return r.store.update(ctx, id, fields)
}

func (r *PastorScheduleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
