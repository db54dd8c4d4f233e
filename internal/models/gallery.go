package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UntitledGroup is the group name for gallery images without a title.
const UntitledGroup = "제목 없음"

// GalleryImage is a single image from the older flat gallery.
type GalleryImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GalleryImageRequest is the body of gallery image create and update calls.
type GalleryImageRequest struct {
	ImageURL    *string `json:"imageUrl"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

type SectionType string

const (
	SectionText      SectionType = "text"
	SectionImageGrid SectionType = "image-grid"
)

type GridType string

const (
	Grid4 GridType = "4-grid"
	Grid6 GridType = "6-grid"
)

// Section is one block of a gallery post body.
type Section struct {
	Type     SectionType `bson:"type" json:"type"`
	Content  string      `bson:"content" json:"content"`
	Images   []string    `bson:"images" json:"images"`
	GridType GridType    `bson:"gridType" json:"gridType"`
}

// GalleryPost is a photo story made of text and image-grid sections.
type GalleryPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Date      time.Time          `bson:"date" json:"date"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Sections  []Section          `bson:"sections" json:"sections"`
	Order     int                `bson:"order" json:"order"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GalleryPostRequest is the body of gallery post create and update calls.
type GalleryPostRequest struct {
	Title     *string    `json:"title"`
	Date      DateInput  `json:"date"`
	Thumbnail *string    `json:"thumbnail"`
	Sections  *[]Section `json:"sections"`
	Order     *int       `json:"order"`
	IsActive  *bool      `json:"isActive"`
}
