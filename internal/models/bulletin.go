package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBulletinImages is the number of pages a weekly bulletin can have.
const MaxBulletinImages = 2

// Bulletin is a weekly church bulletin uploaded as one or two files.
type Bulletin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	ImageURLs []string           `bson:"imageUrls" json:"imageUrls"`
	Date      time.Time          `bson:"date" json:"date"`
	Order     int                `bson:"order" json:"order"`
	Views     int                `bson:"views" json:"views"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BulletinRequest is the body of bulletin create and update calls.
type BulletinRequest struct {
	Title     *string   `json:"title"`
	ImageURLs []string  `json:"imageUrls"`
	Date      DateInput `json:"date"`
	Order     *int      `json:"order"`
}
