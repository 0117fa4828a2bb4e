package item

import (
	"context"
	"strings"

	"collectionhub/internal/domain/errs"
	"collectionhub/internal/utils/validate"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]Item, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Item, error)
	Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Item, error)
	Toggle(ctx context.Context, userID, id uuid.UUID) (Item, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	UniqueTypes(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]string, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item"),
	}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, f Filter) ([]Item, error) {
	f.Type = NormalizeTypeFilter(f.Type)
	return s.repo.List(ctx, userID, f)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Item, error) {
	var verr errs.ValidationError

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = validate.TrimmedOrNil(in.Image)
	in.Type = validate.TrimmedOrNil(in.Type)

	if in.Name == "" {
		verr.Add("name", "Name is required")
	}
	if in.Description == "" {
		verr.Add("description", "Description is required")
	}
	if in.CollectionID == uuid.Nil {
		verr.Add("collectionId", "Collection is required")
	}
	if in.Image != nil && !validate.HTTPURL(*in.Image) {
		verr.Add("image", "Image must be a valid URL")
	}
	if in.CollectStatus == nil {
		st := StatusUnknown
		in.CollectStatus = &st
	} else if err := in.CollectStatus.Validate(); err != nil {
		verr.Add("collectStatus", "Invalid collect status")
	}

	if err := verr.Err(); err != nil {
		return Item{}, err
	}

	it, err := s.repo.Create(ctx, userID, in)
	if err != nil {
		return Item{}, err
	}

	s.log.Debug("item created", "item_id", it.ID, "collection_id", it.CollectionID)
	return it, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Item, error) {
	var verr errs.ValidationError

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			verr.Add("name", "Name cannot be empty")
		}
		in.Name = &name
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			verr.Add("description", "Description cannot be empty")
		}
		in.Description = &desc
	}
	if in.Image != nil {
		img := strings.TrimSpace(*in.Image)
		if img != "" && !validate.HTTPURL(img) {
			verr.Add("image", "Image must be a valid URL")
		}
		in.Image = &img
	}
	if in.Type != nil {
		typ := strings.TrimSpace(*in.Type)
		in.Type = &typ
	}
	if in.CollectStatus != nil {
		if err := in.CollectStatus.Validate(); err != nil {
			verr.Add("collectStatus", "Invalid collect status")
		}
	}

	if err := verr.Err(); err != nil {
		return Item{}, err
	}

	return s.repo.Update(ctx, userID, id, in)
}

func (s *Service) Toggle(ctx context.Context, userID, id uuid.UUID) (Item, error) {
	return s.repo.Toggle(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.Debug("item deleted", "item_id", id)
	return nil
}

func (s *Service) UniqueTypes(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]string, error) {
	types, err := s.repo.UniqueTypes(ctx, userID, collectionID)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}

// NormalizeTypeFilter: "all" и пустая строка означают отсутствие фильтра.
func NormalizeTypeFilter(typ string) string {
	typ = strings.TrimSpace(typ)
	if strings.EqualFold(typ, AllTypes) {
		return ""
	}
	return typ
}
