package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bivekigroup/staff-backend-go/internal/pkg/storage"
	"github.com/bivekigroup/staff-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

var allowedAvatarExts = []string{".jpg", ".jpeg", ".png", ".webp"}

type FileService interface {
	// UploadAvatar stores the file and returns its public URL.
	UploadAvatar(ctx context.Context, file io.Reader, filename string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: fileStorage}
}

// UploadAvatar implements FileService.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !validator.IsInSlice(ext, allowedAvatarExts) {
		return "", validator.ValidationErrors{{
			Field:   "file",
			Message: "must be one of " + strings.Join(allowedAvatarExts, ", "),
		}}
	}

	path := "avatars/" + uuid.NewString() + ext
	stored, err := s.storage.Upload(ctx, file, path, mimeTypeFor(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored)
	if err != nil {
		return "", fmt.Errorf("failed to resolve avatar URL: %w", err)
	}
	return url, nil
}

func mimeTypeFor(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
