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

var _ repositories.PopupRepository = (*PopupRepository)(nil)

var popupSort = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}

type PopupRepository struct {
	store documentStore[models.Popup]
}

func NewPopupRepository(db *mongo.Database) *PopupRepository {
	return &PopupRepository{store: newDocumentStore[models.Popup](db, "popups")}
}

func (r *PopupRepository) Create(ctx context.Context, popup *models.Popup) error {
	stamp(&popup.ID, &popup.CreatedAt, &popup.UpdatedAt)
	return r.store.insert(ctx, popup)
}

func (r *PopupRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Popup, error) {
	return r.store.findByID(ctx, id)
}

func (r *PopupRepository) FindAll(ctx context.Context) ([]*models.Popup, error) {
	return r.store.find(ctx, bson.M{}, options.Find().SetSort(popupSort))
}

// FindActiveAt returns enabled popups whose window contains t. A null
// endDate means the popup never expires.
func (r *PopupRepository) FindActiveAt(ctx context.Context, t time.Time) ([]*models.Popup, error) {
	filter := bson.M{
		"isActive":  true,
		"startDate": bson.M{"$lte": t},
		"$or": bson.A{
			bson.M{"endDate": nil},
			bson.M{"endDate": bson.M{"$gte": t}},
		},
	}
	return r.store.find(ctx, filter, options.Find().SetSort(popupSort))
}

func (r *PopupRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.Popup, error) {
	return r.store.update(ctx, id, fields)
}

func (r *PopupRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
