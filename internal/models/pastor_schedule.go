package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultScheduleColor = "#718096"

// PastorSchedule is an entry on the pastor's public calendar. A nil EndDate
// means a single-day entry.
type PastorSchedule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     *time.Time         `bson:"endDate" json:"endDate"`
	Description string             `bson:"description" json:"description"`
	Color       string             `bson:"color" json:"color"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LastDay returns EndDate, or StartDate for single-day entries.
func (s *PastorSchedule) LastDay() time.Time {
	if s.EndDate == nil {
		return s.StartDate
	}
	return *s.EndDate
}

// PastorScheduleRequest is the body of schedule create and update calls.
type PastorScheduleRequest struct {
	Title       *string   `json:"title"`
	StartDate   DateInput `json:"startDate"`
	EndDate     DateInput `json:"endDate"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	Order       *int      `json:"order"`
	IsActive    *bool     `json:"isActive"`
}
