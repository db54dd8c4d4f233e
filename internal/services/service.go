package services

import (
	"context"
	"time"

	"github.com/changil/changilweb-server/internal/calendar"
	"github.com/changil/changilweb-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SermonService defines the interface for sermon operations
type SermonService interface {
	List(ctx context.Context) ([]*models.Sermon, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Sermon, error)
	// LatestByType returns nil without error when no sermon of the type exists.
	LatestByType(ctx context.Context, sermonType models.SermonType) (*models.Sermon, error)
	Create(ctx context.Context, req *models.SermonRequest) (*models.Sermon, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.SermonRequest) (*models.Sermon, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BulletinService defines the interface for bulletin operations
type BulletinService interface {
	List(ctx context.Context) ([]*models.Bulletin, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Bulletin, error)
	// Latest returns nil without error when there are no bulletins.
	Latest(ctx context.Context) (*models.Bulletin, error)
	Create(ctx context.Context, req *models.BulletinRequest) (*models.Bulletin, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.BulletinRequest) (*models.Bulletin, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) (int, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventService defines the interface for event poster operations
type EventService interface {
	// List returns active posters, or every poster when all is set.
	List(ctx context.Context, all bool) ([]*models.Event, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	Create(ctx context.Context, req *models.EventRequest) (*models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.EventRequest) (*models.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GalleryService defines the interface for the legacy image gallery
type GalleryService interface {
	List(ctx context.Context) ([]*models.GalleryImage, error)
	Groups(ctx context.Context) ([]*models.GalleryImage, error)
	ByTitle(ctx context.Context, title string) ([]*models.GalleryImage, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error)
	Create(ctx context.Context, req *models.GalleryImageRequest) (*models.GalleryImage, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.GalleryImageRequest) (*models.GalleryImage, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// GalleryPostService defines the interface for gallery post operations
type GalleryPostService interface {
	List(ctx context.Context) ([]*models.GalleryPost, error)
	Latest(ctx context.Context) ([]*models.GalleryPost, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.GalleryPost, error)
	Create(ctx context.Context, req *models.GalleryPostRequest) (*models.GalleryPost, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.GalleryPostRequest) (*models.GalleryPost, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PopupService defines the interface for popup operations
type PopupService interface {
	List(ctx context.Context) ([]*models.Popup, error)
	// Active returns the first popup shown at now whose ID is not in
	// dismissed, or nil.
	Active(ctx context.Context, now time.Time, dismissed ...string) (*models.Popup, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Popup, error)
	Create(ctx context.Context, req *models.PopupRequest) (*models.Popup, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.PopupRequest) (*models.Popup, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PastorScheduleService defines the interface for pastor schedule operations
type PastorScheduleService interface {
	// List returns active entries; a non-zero year and month restrict it
	// to entries overlapping that month.
	List(ctx context.Context, year int, month time.Month) ([]*models.PastorSchedule, error)
	Calendar(ctx context.Context, year int, month time.Month, today time.Time) (*calendar.Month, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.PastorSchedule, error)
	Create(ctx context.Context, req *models.PastorScheduleRequest) (*models.PastorSchedule, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.PastorScheduleRequest) (*models.PastorSchedule, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// DonationReceiptService defines the interface for donation receipt requests
type DonationReceiptService interface {
	List(ctx context.Context) ([]*models.DonationReceipt, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.DonationReceipt, error)
	Submit(ctx context.Context, req *models.DonationReceiptRequest) (*models.DonationReceipt, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, req *models.DonationReceiptUpdate) (*models.DonationReceipt, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	// Verify checks a token and returns the admin's login time.
	Verify(token string) (time.Time, error)
}

// UploadService defines the interface for direct-to-storage uploads
type UploadService interface {
	Sign(ctx context.Context, req *models.UploadRequest) (*models.UploadTicket, error)
}
