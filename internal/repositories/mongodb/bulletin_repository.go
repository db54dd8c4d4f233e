package mongodb

import (
	"context"
	"errors"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repositories.BulletinRepository = (*BulletinRepository)(nil)

var bulletinSort = bson.D{{Key: "date", Value: -1}, {Key: "order", Value: -1}}

// BulletinRepository handles MongoDB operations for Bulletin
type BulletinRepository struct {
	store documentStore[models.Bulletin]
}

// NewBulletinRepository creates a new BulletinRepository
func NewBulletinRepository(db *mongo.Database) *BulletinRepository {
	return &BulletinRepository{store: newDocumentStore[models.Bulletin](db, "bulletins")}
}

func (r *BulletinRepository) Create(ctx context.Context, bulletin *models.Bulletin) error {
	stamp(&bulletin.ID, &bulletin.CreatedAt, &bulletin.UpdatedAt)
	return r.store.insert(ctx, bulletin)
}

func (r *BulletinRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Bulletin, error) {
	return r.store.findByID(ctx, id)
}

// FindAll returns bulletins newest first
func (r *BulletinRepository) FindAll(ctx context.Context) ([]*models.Bulletin, error) {
	return r.store.find(ctx, bson.M{}, options.Find().SetSort(bulletinSort))
}

// FindLatest returns the newest bulletin, or ErrNotFound when there are none
func (r *BulletinRepository) FindLatest(ctx context.Context) (*models.Bulletin, error) {
	return r.store.findOne(ctx, bson.M{}, options.FindOne().SetSort(bulletinSort))
}

func (r *BulletinRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.Bulletin, error) {
	return r.store.update(ctx, id, fields)
}

// IncrementViews atomically bumps the view counter and returns the new value
func (r *BulletinRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) (int, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"views": 1})

	var doc struct {
		Views int `bson:"views"`
	}
	err := r.store.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, repositories.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return doc.Views, nil
}

func (r *BulletinRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
