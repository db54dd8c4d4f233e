package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/repositories"
	"github.com/changil/changilweb-server/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgBulletinNotFound = "주보를 찾을 수 없습니다."
	msgBulletinRequired = "제목과 이미지 URL(최소 1개)은 필수입니다."
	msgBulletinNoImages = "이미지 URL은 최소 1개 이상 필요합니다."
	msgBulletinTooMany  = "이미지는 최대 2개까지 업로드할 수 있습니다."
)

type bulletinService struct {
	repo repositories.BulletinRepository
	now  func() time.Time
}

// NewBulletinService creates a new BulletinService implementation
func NewBulletinService(repo repositories.BulletinRepository) BulletinService {
	return &bulletinService{repo: repo, now: time.Now}
}

func (s *bulletinService) List(ctx context.Context) ([]*models.Bulletin, error) {
	return s.repo.FindAll(ctx)
}

func (s *bulletinService) Get(ctx context.Context, id primitive.ObjectID) (*models.Bulletin, error) {
	bulletin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgBulletinNotFound)
	}
	return bulletin, nil
}

func (s *bulletinService) Latest(ctx context.Context) (*models.Bulletin, error) {
	bulletin, err := s.repo.FindLatest(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	return bulletin, err
}

func (s *bulletinService) Create(ctx context.Context, req *models.BulletinRequest) (*models.Bulletin, error) {
	title := deref(req.Title)
	if strings.TrimSpace(title) == "" || len(req.ImageURLs) == 0 {
		return nil, validationError(msgBulletinRequired)
	}
	urls, err := bulletinImages(req.ImageURLs)
	if err != nil {
		return nil, err
	}

	bulletin := &models.Bulletin{
		Title:     title,
		ImageURLs: urls,
		Date:      req.Date.Or(s.now()),
		Order:     derefInt(req.Order),
	}
	if err := s.repo.Create(ctx, bulletin); err != nil {
		return nil, err
	}
	return bulletin, nil
}

func (s *bulletinService) Update(ctx context.Context, id primitive.ObjectID, req *models.BulletinRequest) (*models.Bulletin, error) {
	fields := repositories.Fields{}
	if v := deref(req.Title); v != "" {
		fields["title"] = v
	}
	if req.ImageURLs != nil {
		urls, err := bulletinImages(req.ImageURLs)
		if err != nil {
			return nil, err
		}
		fields["imageUrls"] = urls
	}
	if req.Date.Valid {
		fields["date"] = req.Date.Time
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}

	bulletin, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgBulletinNotFound)
	}
	return bulletin, nil
}

func (s *bulletinService) IncrementViews(ctx context.Context, id primitive.ObjectID) (int, error) {
	views, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return 0, notFoundOr(err, msgBulletinNotFound)
	}
	return views, nil
}

func (s *bulletinService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgBulletinNotFound)
}

// bulletinImages enforces one or two non-blank image URLs.
func bulletinImages(raw []string) ([]string, error) {
	if len(raw) > models.MaxBulletinImages {
		return nil, validationError(msgBulletinTooMany)
	}
	urls := utils.NonBlank(raw)
	if len(urls) == 0 {
		return nil, validationError(msgBulletinNoImages)
	}
	return urls, nil
}
