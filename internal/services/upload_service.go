package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/pkg/objectstore"
	"github.com/google/uuid"
)

const msgBadBucket = "지원하지 않는 업로드 위치입니다."

// ObjectStore is the part of the storage client the upload flow needs.
type ObjectStore interface {
	SignUpload(ctx context.Context, bucket, objectPath string) (*objectstore.SignedUpload, error)
	PublicURL(bucket, objectPath string) string
}

type uploadService struct {
	store   ObjectStore
	buckets map[string]string
	now     func() time.Time
}

// NewUploadService creates an UploadService. Clients may name a bucket by
// its alias ("image", "bulletin") or by its configured name.
func NewUploadService(store ObjectStore, imageBucket, bulletinBucket string) UploadService {
	return &uploadService{
		store: store,
		buckets: map[string]string{
			"image":        imageBucket,
			"bulletin":     bulletinBucket,
			imageBucket:    imageBucket,
			bulletinBucket: bulletinBucket,
		},
		now: time.Now,
	}
}

// Sign issues a signed upload URL. The object name is random; only the
// lowercased extension of FileName is kept.
func (s *uploadService) Sign(ctx context.Context, req *models.UploadRequest) (*models.UploadTicket, error) {
	bucket, ok := s.buckets[strings.TrimSpace(req.Bucket)]
	if !ok || bucket == "" {
		return nil, validationError(msgBadBucket)
	}

	ext := strings.ToLower(path.Ext(req.FileName))
	objectPath := fmt.Sprintf("%s/%s%s", s.now().Format("2006/01"), uuid.NewString(), ext)

	signed, err := s.store.SignUpload(ctx, bucket, objectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload: %w", err)
	}
	return &models.UploadTicket{
		Bucket:    bucket,
		Path:      objectPath,
		UploadURL: signed.UploadURL,
		PublicURL: s.store.PublicURL(bucket, objectPath),
	}, nil
}
