package collection

import (
	"context"

	"collectionhub/internal/app/server/api/http/apierr"
	itemhttp "collectionhub/internal/app/server/api/http/item"
	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/domain/collection"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    collection.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service collection.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.progressOp(), h.progress)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	cols, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	body := make([]CollectionResponse, 0, len(cols))
	for _, c := range cols {
		body = append(body, toResponse(c))
	}
	return &listOutput{Body: body}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*collectionOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.service.Create(ctx, userID, collection.CreateInput{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &collectionOutput{Body: toResponse(c)}, nil
}

func (h *Handler) progress(ctx context.Context, _ *listInput) (*progressOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := h.service.Progress(ctx, userID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	body := make([]ProgressResponse, 0, len(progress))
	for _, p := range progress {
		body = append(body, toProgress(p))
	}
	return &progressOutput{Body: body}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*detailsOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := apierr.ParseID(input.ID, "collection")
	if err != nil {
		return nil, err
	}

	d, err := h.service.Get(ctx, userID, id)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &detailsOutput{Body: DetailsResponse{
		ProgressResponse: toProgress(d.Progress),
		Items:            itemhttp.ToResponses(d.Items),
	}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*collectionOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := apierr.ParseID(input.ID, "collection")
	if err != nil {
		return nil, err
	}

	c, err := h.service.Update(ctx, userID, id, collection.UpdateInput{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &collectionOutput{Body: toResponse(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := apierr.ParseID(input.ID, "collection")
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &deleteOutput{}
	out.Body.Success = true
	return out, nil
}
