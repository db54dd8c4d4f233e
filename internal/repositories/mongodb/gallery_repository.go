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

var (
	_ repositories.GalleryImageRepository = (*GalleryImageRepository)(nil)
	_ repositories.GalleryPostRepository  = (*GalleryPostRepository)(nil)
)

var galleryImageSort = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}

// GalleryImageRepository stores images of the flat gallery
type GalleryImageRepository struct {
	store documentStore[models.GalleryImage]
}

func NewGalleryImageRepository(db *mongo.Database) *GalleryImageRepository {
	return &GalleryImageRepository{store: newDocumentStore[models.GalleryImage](db, "galleries")}
}

func (r *GalleryImageRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	stamp(&image.ID, &image.CreatedAt, &image.UpdatedAt)
	return r.store.insert(ctx, image)
}

func (r *GalleryImageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	return r.store.findByID(ctx, id)
}

// FindActive returns active images; limit <= 0 means no limit
func (r *GalleryImageRepository) FindActive(ctx context.Context, limit int) ([]*models.GalleryImage, error) {
	opts := options.Find().SetSort(galleryImageSort)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.store.find(ctx, bson.M{"isActive": true}, opts)
}

func (r *GalleryImageRepository) FindActiveByTitle(ctx context.Context, title string) ([]*models.GalleryImage, error) {
	return r.store.find(ctx, bson.M{"isActive": true, "title": title}, options.Find().SetSort(galleryImageSort))
}

func (r *GalleryImageRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.GalleryImage, error) {
	return r.store.update(ctx, id, fields)
}

func (r *GalleryImageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}

// GalleryPostRepository stores gallery posts
type GalleryPostRepository struct {
	store documentStore[models.GalleryPost]
}

func NewGalleryPostRepository(db *mongo.Database) *GalleryPostRepository {
	return &GalleryPostRepository{store: newDocumentStore[models.GalleryPost](db, "galleryposts")}
}

func (r *GalleryPostRepository) Create(ctx context.Context, post *models.GalleryPost) error {
	stamp(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	return r.store.insert(ctx, post)
}

func (r *GalleryPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryPost, error) {
	return r.store.findByID(ctx, id)
}

// FindActive returns active posts newest first; limit <= 0 means no limit
func (r *GalleryPostRepository) FindActive(ctx context.Context, limit int) ([]*models.GalleryPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.store.find(ctx, bson.M{"isActive": true}, opts)
}

func (r *GalleryPostRepository) Update(ctx context.Context, id primitive.ObjectID, fields repositories.Fields) (*models.GalleryPost, error) {
	return r.store.update(ctx, id, fields)
}

func (r *GalleryPostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.delete(ctx, id)
}
