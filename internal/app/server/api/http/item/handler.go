package item

import (
	"context"

	"collectionhub/internal/app/server/api/http/apierr"
	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.typesOp(), h.types)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.toggleOp(), h.toggle)
	huma.Register(api, h.deleteOp(), h.delete)
}

// collectionFilter: пустая строка - без фильтра, мусор - ошибка запроса.
func collectionFilter(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid collectionId")
	}
	return &id, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	collectionID, err := collectionFilter(input.CollectionID)
	if err != nil {
		return nil, err
	}

	items, err := h.service.List(ctx, userID, item.Filter{Type: input.Type, CollectionID: collectionID})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &listOutput{Body: ToResponses(items)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	in := item.CreateInput{
		Name:          input.Body.Name,
		Description:   input.Body.Description,
		Image:         input.Body.Image,
		Type:          input.Body.Type,
		CollectStatus: input.Body.CollectStatus,
	}
	if input.Body.CollectionID != "" {
		id, err := uuid.Parse(input.Body.CollectionID)
		if err != nil {
			return nil, apierr.From(h.log, errs.Invalid("collectionId", "Collection is required"))
		}
		in.CollectionID = id
	}

	it, err := h.service.Create(ctx, userID, in)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &itemOutput{Body: ToResponse(it)}, nil
}

func (h *Handler) types(ctx context.Context, input *typesInput) (*typesOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	collectionID, err := collectionFilter(input.CollectionID)
	if err != nil {
		return nil, err
	}

	types, err := h.service.UniqueTypes(ctx, userID, collectionID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &typesOutput{Body: types}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itemOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := apierr.ParseID(input.ID, "item")
	if err != nil {
		return nil, err
	}

	it, err := h.service.Update(ctx, userID, id, item.UpdateInput{
		Name:          input.Body.Name,
		Description:   input.Body.Description,
		Image:         input.Body.Image,
		Type:          input.Body.Type,
		CollectStatus: input.Body.CollectStatus,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &itemOutput{Body: ToResponse(it)}, nil
}

func (h *Handler) toggle(ctx context.Context, input *idInput) (*itemOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := apierr.ParseID(input.ID, "item")
	if err != nil {
		return nil, err
	}

	it, err := h.service.Toggle(ctx, userID, id)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &itemOutput{Body: ToResponse(it)}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := apierr.ParseID(input.ID, "item")
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
