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
	msgPopupNotFound = "팝업을 찾을 수 없습니다."
	msgTitleRequired = "제목은 필수입니다."
)

type popupService struct {
	repo repositories.PopupRepository
	now  func() time.Time
}

// NewPopupService creates a new PopupService implementation
func NewPopupService(repo repositories.PopupRepository) PopupService {
	return &popupService{repo: repo, now: time.Now}
}

func (s *popupService) List(ctx context.Context) ([]*models.Popup, error) {
	return s.repo.FindAll(ctx)
}

func (s *popupService) Active(ctx context.Context, now time.Time, dismissed ...string) (*models.Popup, error) {
	popups, err := s.repo.FindActiveAt(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, p := range popups {
		if !p.ActiveAt(now) || contains(dismissed, p.ID.Hex()) {
			continue
		}
		return p, nil
	}
	return nil, nil
}

func (s *popupService) Get(ctx context.Context, id primitive.ObjectID) (*models.Popup, error) {
	popup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgPopupNotFound)
	}
	return popup, nil
}

func (s *popupService) Create(ctx context.Context, req *models.PopupRequest) (*models.Popup, error) {
	title := deref(req.Title)
	if strings.TrimSpace(title) == "" {
		return nil, validationError(msgTitleRequired)
	}
	linkText := deref(req.LinkText)
	if linkText == "" {
		linkText = models.DefaultPopupLinkText
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	popup := &models.Popup{
		Title:     title,
		Content:   deref(req.Content),
		ImageURL:  deref(req.ImageURL),
		LinkURL:   deref(req.LinkURL),
		LinkText:  linkText,
		IsActive:  isActive,
		StartDate: req.StartDate.Or(s.now()),
		EndDate:   req.EndDate.Ptr(),
		Order:     derefInt(req.Order),
	}
	if popup.EndDate != nil && popup.EndDate.Before(popup.StartDate) {
		return nil, validationError(msgEndBeforeStart)
	}
	if err := s.repo.Create(ctx, popup); err != nil {
		return nil, err
	}
	return popup, nil
}

func (s *popupService) Update(ctx context.Context, id primitive.ObjectID, req *models.PopupRequest) (*models.Popup, error) {
	fields := repositories.Fields{}
	if v := deref(req.Title); v != "" {
		fields["title"] = v
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.ImageURL != nil {
		fields["imageUrl"] = *req.ImageURL
	}
	if req.LinkURL != nil {
		fields["linkUrl"] = *req.LinkURL
	}
	if req.LinkText != nil {
		fields["linkText"] = *req.LinkText
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	if req.StartDate.Valid {
		fields["startDate"] = req.StartDate.Time
	}
	if req.EndDate.Set {
		fields["endDate"] = req.EndDate.Ptr()
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.StartDate.Valid || req.EndDate.Valid {
		start, end := req.StartDate.Time, req.EndDate.Ptr()
		if !req.StartDate.Valid || !req.EndDate.Set {
			current, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, notFoundOr(err, msgPopupNotFound)
			}
			if !req.StartDate.Valid {
				start = current.StartDate
			}
			if !req.EndDate.Set {
				end = current.EndDate
			}
		}
		if endsBefore(&start, end) {
			return nil, validationError(msgEndBeforeStart)
		}
	}

	popup, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgPopupNotFound)
	}
	return popup, nil
}

func (s *popupService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgPopupNotFound)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
