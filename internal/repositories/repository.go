package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches the given ID.
var ErrNotFound = errors.New("document not found")

// Fields is a partial update; only the listed fields are $set.
type Fields = bson.M

// SermonRepository defines the interface for sermon data operations
type SermonRepository interface {
	Create(ctx context.Context, sermon *models.Sermon) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Sermon, error)
	FindAll(ctx context.Context) ([]*models.Sermon, error)
	FindLatestByType(ctx context.Context, sermonType models.SermonType) (*models.Sermon, error)
	ExistsByYoutubeID(ctx context.Context, youtubeID string) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.Sermon, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BulletinRepository defines the interface for bulletin data operations
type BulletinRepository interface {
	Create(ctx context.Context, bulletin *models.Bulletin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Bulletin, error)
	FindAll(ctx context.Context) ([]*models.Bulletin, error)
	FindLatest(ctx context.Context) (*models.Bulletin, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.Bulletin, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (int, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindAll(ctx context.Context) ([]*models.Event, error)
	FindActive(ctx context.Context, limit int) ([]*models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GalleryImageRepository defines the interface for legacy gallery image operations
type GalleryImageRepository interface {
	Create(ctx context.Context, image *models.GalleryImage) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error)
	FindActive(ctx context.Context, limit int) ([]*models.GalleryImage, error)
	FindActiveByTitle(ctx context.Context, title string) ([]*models.GalleryImage, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.GalleryImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GalleryPostRepository defines the interface for gallery post operations
type GalleryPostRepository interface {
	Create(ctx context.Context, post *models.GalleryPost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.GalleryPost, error)
	FindActive(ctx context.Context, limit int) ([]*models.GalleryPost, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.GalleryPost, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PopupRepository defines the interface for popup operations
type PopupRepository interface {
	Create(ctx context.Context, popup *models.Popup) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Popup, error)
	FindAll(ctx context.Context) ([]*models.Popup, error)
	// FindActiveAt returns popups inside their window at t, best first.
	FindActiveAt(ctx context.Context, t time.Time) ([]*models.Popup, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.Popup, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PastorScheduleRepository defines the interface for pastor schedule operations
type PastorScheduleRepository interface {
	Create(ctx context.Context, schedule *models.PastorSchedule) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PastorSchedule, error)
	FindActive(ctx context.Context) ([]*models.PastorSchedule, error)
	// FindActiveOverlapping returns entries that touch [start, end].
	FindActiveOverlapping(ctx context.Context, start, end time.Time) ([]*models.PastorSchedule, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.PastorSchedule, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DonationReceiptRepository defines the interface for donation receipt operations
type DonationReceiptRepository interface {
	Create(ctx context.Context, receipt *models.DonationReceipt) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.DonationReceipt, error)
	FindAll(ctx context.Context) ([]*models.DonationReceipt, error)
	Update(ctx context.Context, id primitive.ObjectID, fields Fields) (*models.DonationReceipt, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
