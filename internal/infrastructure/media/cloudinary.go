package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/exp/slog"
)

type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *slog.Logger
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret, folder string, log *slog.Logger) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryStore{
		cld:    cld,
		folder: folder,
		log:    log.With("component", "cloudinary"),
	}, nil
}

// Put загружает изображение и возвращает его https-адрес.
func (s *CloudinaryStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     name,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}

	s.log.Debug("image uploaded", "public_id", res.PublicID, "bytes", len(data))
	return res.SecureURL, nil
}
