package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPopupLinkText = "자세히 보기"

// Popup is a notice shown over the home page during its active window.
type Popup struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	LinkURL   string             `bson:"linkUrl" json:"linkUrl"`
	LinkText  string             `bson:"linkText" json:"linkText"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   *time.Time         `bson:"endDate" json:"endDate"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ActiveAt reports whether the popup is enabled and inside its window at t.
func (p *Popup) ActiveAt(t time.Time) bool {
	if !p.IsActive || p.StartDate.After(t) {
		return false
	}
	return p.EndDate == nil || !p.EndDate.Before(t)
}

// PopupRequest is the body of popup create and update calls.
type PopupRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	LinkURL   *string   `json:"linkUrl"`
	LinkText  *string   `json:"linkText"`
	IsActive  *bool     `json:"isActive"`
	StartDate DateInput `json:"startDate"`
	EndDate   DateInput `json:"endDate"`
	Order     *int      `json:"order"`
}
