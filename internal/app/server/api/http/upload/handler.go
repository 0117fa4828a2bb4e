package upload

import (
	"context"

	"collectionhub/internal/app/server/api/http/apierr"
	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/domain/upload"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    upload.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service upload.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	files := input.RawBody.File[fileField]
	if len(files) == 0 {
		return nil, apierr.From(h.log, upload.ErrEmpty)
	}

	f, err := files[0].Open()
	if err != nil {
		return nil, apierr.From(h.log, upload.ErrEmpty)
	}
	defer f.Close()

	url, err := h.service.Upload(ctx, userID, f)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &uploadOutput{}
	out.Body.URL = url
	return out, nil
}
