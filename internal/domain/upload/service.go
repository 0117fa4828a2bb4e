// Package upload принимает изображения предметов, уменьшает их и
// сохраняет во внешнем хранилище.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"collectionhub/internal/domain/errs"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const MaxSize = 10 << 20

var (
	ErrNotConfigured = errs.New(errs.ErrUnavailable, "image uploads are not configured")
	ErrTooLarge      = errs.Invalid("file", "File must be at most 10 MiB")
	ErrUnsupported   = errs.Invalid("file", "Only JPEG, PNG and GIF images are allowed")
	ErrEmpty         = errs.Invalid("file", "File is required")
	ErrDimensions    = errs.Invalid("file", "Image must be at most 40 megapixels")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Store - внешнее хранилище изображений
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Processor уменьшает изображение; возвращает данные и формат.
type Processor func(data []byte, maxWidth uint) ([]byte, string, error)

type Servicer interface {
	Upload(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error)
}

type Service struct {
	store    Store
	process  Processor
	maxWidth uint
	log      *slog.Logger
}

// NewService: store может быть nil, тогда загрузка отвечает ErrNotConfigured.
func NewService(store Store, process Processor, maxWidth uint, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		process:  process,
		maxWidth: maxWidth,
		log:      log.With("component", "upload"),
	}
}

func (s *Service) Upload(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error) {
	if s.store == nil {
		return "", ErrNotConfigured
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	if !allowedTypes[http.DetectContentType(data)] {
		return "", ErrUnsupported
	}

	if s.process != nil {
		data, _, err = s.process(data, s.maxWidth)
		if err != nil {
			s.log.Debug("image processing failed", "error", err)
			if errors.Is(err, ErrDimensions) {
				return "", ErrDimensions
			}
			return "", ErrUnsupported
		}
	}

	name := userID.String() + "-" + uuid.NewString()
	url, err := s.store.Put(ctx, name, bytes.Clone(data))
	if err != nil {
		s.log.Error("upload failed", "user_id", userID, "error", err)
		return "", fmt.Errorf("store image: %w", err)
	}

	return url, nil
}
