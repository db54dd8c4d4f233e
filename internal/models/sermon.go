package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SermonType is the worship category a sermon video belongs to.
type SermonType string

const (
	SermonTypeSunday  SermonType = "주일예배"
	SermonTypeDawn    SermonType = "새벽기도"
	SermonTypeSpecial SermonType = "특별영상"

	// SermonTypeDawnLegacy appears in older documents and is shown with dawn prayers.
	SermonTypeDawnLegacy SermonType = "새벽예배"
)

// Valid reports whether t is one of the types accepted on create.
func (t SermonType) Valid() bool {
	switch t {
	case SermonTypeSunday, SermonTypeDawn, SermonTypeSpecial:
		return true
	}
	return false
}

// Sermon is a sermon video hosted on YouTube.
type Sermon struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title           string             `bson:"title" json:"title"`
	Type            SermonType         `bson:"type" json:"type"`
	YoutubeURL      string             `bson:"youtubeUrl" json:"youtubeUrl"`
	YoutubeID       string             `bson:"youtubeId" json:"youtubeId"`
	ThumbnailURL    string             `bson:"thumbnailUrl" json:"thumbnailUrl"`
	CustomThumbnail string             `bson:"customThumbnail" json:"customThumbnail"`
	Description     string             `bson:"description" json:"description"`
	Date            time.Time          `bson:"date" json:"date"`
	Order           int                `bson:"order" json:"order"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SermonRequest is the body of sermon create and update calls. Nil fields
// are left untouched on update.
type SermonRequest struct {
	Title           *string     `json:"title"`
	Type            *SermonType `json:"type"`
	YoutubeURL      *string     `json:"youtubeUrl"`
	Description     *string     `json:"description"`
	Order           *int        `json:"order"`
	CustomThumbnail *string     `json:"customThumbnail"`
	Date            DateInput   `json:"date"`
}
