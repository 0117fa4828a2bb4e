package energetic

import (
	"context"

	"collectionhub/internal/app/server/api/http/apierr"
	"collectionhub/internal/domain/energetic"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const createdMessage = "Energetic added successfully"

type Handler struct {
	service    energetic.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler: middleware применяется только к записи, чтение каталога открыто.
func NewHandler(service energetic.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	list, err := h.service.List(ctx, input.Type)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: list}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	_, err := h.service.Create(ctx, energetic.CreateInput{
		Description: input.Body.Description,
		Image:       input.Body.Image,
		Type:        input.Body.Type,
		Collect:     input.Body.Collect,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &createOutput{}
	out.Body.Message = createdMessage
	return out, nil
}
