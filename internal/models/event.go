package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxActiveEvents caps the number of posters shown on the home page.
const MaxActiveEvents = 10

// Event is an event poster shown on the home page carousel.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	EventDate   *time.Time         `bson:"eventDate" json:"eventDate"`
	EndDate     *time.Time         `bson:"endDate" json:"endDate"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EventRequest is the body of event create and update calls.
type EventRequest struct {
	ImageURL    *string   `json:"imageUrl"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	EventDate   DateInput `json:"eventDate"`
	EndDate     DateInput `json:"endDate"`
	Order       *int      `json:"order"`
	IsActive    *bool     `json:"isActive"`
}
