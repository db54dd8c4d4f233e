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

// Compile-time check to ensure SermonRepository implements the interface
var _ repositories.SermonRepository = (*SermonRepository)(nil)

var sermonSort = bson.D{{Key: "order", Value: 1}, {Key: "date", Value: -1}}

// SermonRepository handles MongoDB operations for Sermon
type SermonRepository struct {
	store documentStore[models.Sermon]
}

// NewSermonRepository creates a new SermonRepository
func NewSermonRepository(db *mongo.Database) *SermonRepository {
	return &SermonRepository{store: newDocumentStore[models.Sermon](db, "sermons")}
}

// Create inserts a new sermon
func (r *SermonRepository) Create(ctx context.Context, sermon *models.Sermon) error {
	stamp(&sermon.ID, &sermon.CreatedAt, &sermon.UpdatedAt)
	return r.store.insert(ctx, sermon)
}

// FindByID finds a sermon by ID
func (r *SermonRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sermon, error) {
	return r.store.findByID(ctx, id)
}

// FindAll returns every sermon in display order
func (r *SermonRepository) FindAll(ctx context.Context) ([]*models.Sermon, error) {
	return r.store.find(ctx, bson.M{}, options.Find().SetSort(sermonSort))
}

// FindLatestByType returns the first sermon of the given type in display order
func (r *SermonRepository) FindLatestByType(ctx context.Context, sermonType models.SermonType) (*models.Sermon, error) {
	return r.store.findOne(ctx, bson.M{"type": sermonType}, options.FindOne().SetSort(sermonSort))
}

// ExistsByYoutubeID reports whether a sermon already uses the video
func (r *SermonRepository) ExistsByYoutubeID(ctx context.Context, youtubeID string) (bool, error) {
	return r.store.exists(ctx, bson.M{"youtubeId": youtubeID})
}

// Update applies a partial update
func (r *SermonRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.Sermon, error) {
	return r.store.update(ctx, id, fields)
}

// Delete deletes a sermon by ID
func (r *SermonRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
