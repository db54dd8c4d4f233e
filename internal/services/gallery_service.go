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
	galleryListLimit   = 10
	galleryGroupLimit  = 3
	latestPostsLimit   = 3
	msgGalleryNotFound = "갤러리 이미지를 찾을 수 없습니다."
	msgPostNotFound    = "갤러리 포스트를 찾을 수 없습니다."
	msgPostRequired    = "제목과 대표 이미지는 필수입니다."
	msgBadSection      = "유효하지 않은 섹션 형식입니다."
)

type galleryService struct {
	repo repositories.GalleryImageRepository
}

// NewGalleryService creates a new GalleryService implementation
func NewGalleryService(repo repositories.GalleryImageRepository) GalleryService {
	return &galleryService{repo: repo}
}

func (s *galleryService) List(ctx context.Context) ([]*models.GalleryImage, error) {
	return s.repo.FindActive(ctx, galleryListLimit)
}

// Groups returns the first image of each title, at most three groups.
// Images without a title are grouped under UntitledGroup.
func (s *galleryService) Groups(ctx context.Context) ([]*models.GalleryImage, error) {
	images, err := s.repo.FindActive(ctx, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	groups := []*models.GalleryImage{}
	for _, img := range images {
		key := img.Title
		if key == "" {
			key = models.UntitledGroup
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		groups = append(groups, img)
		if len(groups) == galleryGroupLimit {
			break
		}
	}
	return groups, nil
}

func (s *galleryService) ByTitle(ctx context.Context, title string) ([]*models.GalleryImage, error) {
	return s.repo.FindActiveByTitle(ctx, title)
}

func (s *galleryService) Get(ctx context.Context, id primitive.ObjectID) (*models.GalleryImage, error) {
	image, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgGalleryNotFound)
	}
	return image, nil
}

func (s *galleryService) Create(ctx context.Context, req *models.GalleryImageRequest) (*models.GalleryImage, error) {
	imageURL := deref(req.ImageURL)
	if strings.TrimSpace(imageURL) == "" {
		return nil, validationError(msgImageRequired)
	}

	image := &models.GalleryImage{
		ImageURL:    imageURL,
		Title:       deref(req.Title),
		Description: deref(req.Description),
		Order:       derefInt(req.Order),
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *galleryService) Update(ctx context.Context, id primitive.ObjectID, req *models.GalleryImageRequest) (*models.GalleryImage, error) {
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
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}

	image, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgGalleryNotFound)
	}
	return image, nil
}

func (s *galleryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgGalleryNotFound)
}

type galleryPostService struct {
	repo repositories.GalleryPostRepository
	now  func() time.Time
}

// NewGalleryPostService creates a new GalleryPostService implementation
func NewGalleryPostService(repo repositories.GalleryPostRepository) GalleryPostService {
	return &galleryPostService{repo: repo, now: time.Now}
}

func (s *galleryPostService) List(ctx context.Context) ([]*models.GalleryPost, error) {
	return s.repo.FindActive(ctx, 0)
}

func (s *galleryPostService) Latest(ctx context.Context) ([]*models.GalleryPost, error) {
	return s.repo.FindActive(ctx, latestPostsLimit)
}

func (s *galleryPostService) Get(ctx context.Context, id primitive.ObjectID) (*models.GalleryPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, msgPostNotFound)
	}
	return post, nil
}

func (s *galleryPostService) Create(ctx context.Context, req *models.GalleryPostRequest) (*models.GalleryPost, error) {
	title, thumbnail := deref(req.Title), deref(req.Thumbnail)
	if strings.TrimSpace(title) == "" || strings.TrimSpace(thumbnail) == "" {
		return nil, validationError(msgPostRequired)
	}
	sections := []models.Section{}
	if req.Sections != nil {
		var err error
		if sections, err = normalizeSections(*req.Sections); err != nil {
			return nil, err
		}
	}

	post := &models.GalleryPost{
		Title:     title,
		Date:      req.Date.Or(s.now()),
		Thumbnail: thumbnail,
		Sections:  sections,
		Order:     derefInt(req.Order),
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *galleryPostService) Update(ctx context.Context, id primitive.ObjectID, req *models.GalleryPostRequest) (*models.GalleryPost, error) {
	fields := repositories.Fields{}
	if v := deref(req.Title); v != "" {
		fields["title"] = v
	}
	if req.Date.Valid {
		fields["date"] = req.Date.Time
	}
	if v := deref(req.Thumbnail); v != "" {
		fields["thumbnail"] = v
	}
	if req.Sections != nil {
		sections, err := normalizeSections(*req.Sections)
		if err != nil {
			return nil, err
		}
		fields["sections"] = sections
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}

	post, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, notFoundOr(err, msgPostNotFound)
	}
	return post, nil
}

func (s *galleryPostService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFoundOr(s.repo.Delete(ctx, id), msgPostNotFound)
}

// normalizeSections checks section and grid types and fills defaults.
func normalizeSections(in []models.Section) ([]models.Section, error) {
	out := make([]models.Section, 0, len(in))
	for _, sec := range in {
		if sec.Type != models.SectionText && sec.Type != models.SectionImageGrid {
			return nil, validationError(msgBadSection)
		}
		switch sec.GridType {
		case "":
			sec.GridType = models.Grid4
		case models.Grid4, models.Grid6:
		default:
			return nil, validationError(msgBadSection)
		}
		if sec.Images == nil {
			sec.Images = []string{}
		}
		out = append(out, sec)
	}
	return out, nil
}
