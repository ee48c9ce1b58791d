package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrImageStorageDisabled = errors.New("image storage disabled")
	ErrNotAnImage           = errors.New("file is not an image")
)

// ObjectStore is satisfied by storage.ImageStore.
type ObjectStore interface {
	Put(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
}

type ImageService struct {
	objects ObjectStore
}

// NewImageService accepts a nil store; uploads then fail with ErrImageStorageDisabled.
func NewImageService(objects ObjectStore) *ImageService {
	return &ImageService{objects: objects}
}

// Upload stores the image under a random name keeping the original
// extension and returns its URL.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	if s.objects == nil {
		return "", ErrImageStorageDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	return s.objects.Put(ctx, name, contentType, r, size)
}
