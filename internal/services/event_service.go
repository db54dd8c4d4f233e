package services

import (
	"context"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgEventNotFound  = "행사 포스터를 찾을 수 없습니다."
	msgImageRequired  = "이미지 URL은 필수입니다."
	msgEndBeforeStart = "종료일은 시작일보다 빠를 수 없습니다."
)

type eventService struct {
	repo repositories.EventRepository
}

// NewEventService creates a new EventService implementation
func NewEventService(repo repositories.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) List(ctx context.Context, all bool) ([]*models.Event, error) {
	if all {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindActive(ctx, models.MaxActiveEvents)
}

func (s *eventService) Get(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgEventNotFound)
	}
	return event, nil
}

// Create stores a new poster. New posters are always active.
func (s *eventService) Create(ctx context.Context, req *models.EventRequest) (*models.Event, error) {
	imageURL := deref(req.ImageURL)
	if strings.TrimSpace(imageURL) == "" {
		return nil, validationError(msgImageRequired)
	}

	event := &models.Event{
		ImageURL:    imageURL,
		Title:       deref(req.Title),
		Description: deref(req.Description),
		EventDate:   req.EventDate.Ptr(),
		EndDate:     req.EndDate.Ptr(),
		Order:       derefInt(req.Order),
		IsActive:    true,
	}
	if endsBefore(event.EventDate, event.EndDate) {
		return nil, validationError(msgEndBeforeStart)
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, id primitive.ObjectID, req *models.EventRequest) (*models.Event, error) {
	fields := repositories.Fields{}
	if v := deref(req.ImageURL); v != "" {
		fields["imageUrl"] = v
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.EventDate.Set {
		fields["eventDate"] = req.EventDate.Ptr()
	}
	if req.EndDate.Set {
		fields["endDate"] = req.EndDate.Ptr()
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	if req.EventDate.Valid || req.EndDate.Valid {
		start, end := req.EventDate.Ptr(), req.EndDate.Ptr()
		if !req.EventDate.Set || !req.EndDate.Set {
			current, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, notFoundOr(err, msgEventNotFound)
			}
			if !req.EventDate.Set {
				start = current.EventDate
			}
			if !req.EndDate.Set {
				end = current.EndDate
			}
		}
		if endsBefore(start, end) {
			return nil, validationError(msgEndBeforeStart)
		}
	}

	event, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgEventNotFound)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgEventNotFound)
}

// endsBefore reports whether both ends of a window are set and end is
// earlier than start.
func endsBefore(start, end *time.Time) bool {
	return start != nil && end != nil && end.Before(*start)
}
