package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/YuvaneshV12/chrono-gift/internal/domain"
	"github.com/YuvaneshV12/chrono-gift/internal/pkg/id"
)

// allowed upload extensions: gift payloads are images or short videos.
var allowedExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".mp4": true, ".webm": true,
}

type Service interface {
	// UploadBase64 stores base64-encoded media and returns its URL for
	// embedding in a gift's image_url/video_url field.
	UploadBase64(ctx context.Context, filename, b64Data string) (string, error)
}

type objectStore interface {
	UploadBase64(ctx context.Context, key, b64Data string) (string, error)
}

type service struct {
	store objectStore
}

func NewService(store objectStore) Service {
	return &service{store: store}
}

func (s *service) UploadBase64(ctx context.Context, filename, b64Data string) (string, error) {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return "", fmt.Errorf("filename has no extension: %w", domain.ErrBadRequest)
	}
	ext := strings.ToLower(filename[dot:])
	if !allowedExts[ext] {
		return "", fmt.Errorf("unsupported media type: %w", domain.ErrBadRequest)
	}
	key := id.New() + ext
	return s.store.UploadBase64(ctx, key, b64Data)
}
