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
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	msgSermonNotFound   = "설교를 찾을 수 없습니다."
	msgSermonRequired   = "제목, 타입, YouTube URL은 필수입니다."
	msgSermonBadType    = "유효하지 않은 설교 타입입니다."
	msgSermonBadURL     = "유효한 YouTube URL이 아닙니다."
	msgSermonDuplicated = "이미 같은 YouTube 영상의 설교가 등록되어 있습니다."
)

type sermonService struct {
	repo repositories.SermonRepository
	now  func() time.Time
}

// NewSermonService creates a new SermonService implementation
func NewSermonService(repo repositories.SermonRepository) SermonService {
	return &sermonService{repo: repo, now: time.Now}
}

func (s *sermonService) List(ctx context.Context) ([]*models.Sermon, error) {
	return s.repo.FindAll(ctx)
}

func (s *sermonService) Get(ctx context.Context, id primitive.ObjectID) (*models.Sermon, error) {
	sermon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgSermonNotFound)
	}
	return sermon, nil
}

func (s *sermonService) LatestByType(ctx context.Context, sermonType models.SermonType) (*models.Sermon, error) {
	sermon, err := s.repo.FindLatestByType(ctx, sermonType)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	return sermon, err
}

func (s *sermonService) Create(ctx context.Context, req *models.SermonRequest) (*models.Sermon, error) {
	title, youtubeURL := deref(req.Title), deref(req.YoutubeURL)
	if strings.TrimSpace(title) == "" || req.Type == nil || *req.Type == "" || strings.TrimSpace(youtubeURL) == "" {
		return nil, validationError(msgSermonRequired)
	}
	if !req.Type.Valid() {
		return nil, validationError(msgSermonBadType)
	}

	youtubeID, ok := utils.ExtractYoutubeID(youtubeURL)
	if !ok {
		return nil, validationError(msgSermonBadURL)
	}
	exists, err := s.repo.ExistsByYoutubeID(ctx, youtubeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateError(msgSermonDuplicated)
	}

	sermon := &models.Sermon{
		Title:           title,
		Type:            *req.Type,
		YoutubeURL:      youtubeURL,
		YoutubeID:       youtubeID,
		ThumbnailURL:    utils.YoutubeThumbnailURL(youtubeID),
		CustomThumbnail: deref(req.CustomThumbnail),
		Description:     deref(req.Description),
		Date:            req.Date.Or(s.now()),
		Order:           derefInt(req.Order),
	}
	if err := s.repo.Create(ctx, sermon); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateError(msgSermonDuplicated)
		}
		return nil, err
	}
	return sermon, nil
}

// Update merges the non-empty fields of req. A new YouTube URL re-derives
// the video ID and thumbnail.
func (s *sermonService) Update(ctx context.Context, id primitive.ObjectID, req *models.SermonRequest) (*models.Sermon, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgSermonNotFound)
	}

	fields := repositories.Fields{}
	if v := deref(req.Title); v != "" {
		fields["title"] = v
	}
	if req.Type != nil && *req.Type != "" {
		if !req.Type.Valid() {
			return nil, validationError(msgSermonBadType)
		}
		fields["type"] = *req.Type
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.CustomThumbnail != nil {
		fields["customThumbnail"] = *req.CustomThumbnail
	}
	if req.Date.Valid {
		fields["date"] = req.Date.Time
	}
	if v := deref(req.YoutubeURL); strings.TrimSpace(v) != "" {
		youtubeID, ok := utils.ExtractYoutubeID(v)
		if !ok {
			return nil, validationError(msgSermonBadURL)
		}
		if youtubeID != current.YoutubeID {
			exists, err := s.repo.ExistsByYoutubeID(ctx, youtubeID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, duplicateError(msgSermonDuplicated)
			}
		}
		fields["youtubeUrl"] = v
		fields["youtubeId"] = youtubeID
		fields["thumbnailUrl"] = utils.YoutubeThumbnailURL(youtubeID)
	}

	sermon, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateError(msgSermonDuplicated)
		}
		return nil, notFoundOr(err, msgSermonNotFound)
	}
	return sermon, nil
}

func (s *sermonService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgSermonNotFound)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
