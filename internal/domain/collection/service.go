package collection

import (
	"context"
	"strings"

	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/utils/validate"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID uuid.UUID) ([]Collection, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Details, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Collection, error)
	Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Collection, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Progress(ctx context.Context, userID uuid.UUID) ([]Progress, error)
}

type Service struct {
	repo  Repository
	items ItemLister
	log   *slog.Logger
}

func NewService(repo Repository, items ItemLister, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		items: items,
		log:   log.With("component", "collection"),
	}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Collection, error) {
	cols, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cols == nil {
		cols = []Collection{}
	}
	return cols, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (Details, error) {
	c, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return Details{}, err
	}

	items, err := s.items.List(ctx, userID, item.Filter{CollectionID: &c.ID})
	if err != nil {
		return Details{}, err
	}
	if items == nil {
		items = []item.Item{}
	}

	return Details{Progress: ProgressOf(c, items), Items: items}, nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Collection, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = validate.TrimmedOrNil(in.Description)

	if in.Name == "" {
		return Collection{}, errs.Invalid("name", "Name is required")
	}

	c, err := s.repo.Create(ctx, userID, in)
	if err != nil {
		return Collection{}, err
	}

	s.log.Debug("collection created", "collection_id", c.ID, "user_id", userID)
	return c, nil
}

// Update меняет только переданные поля одним условным запросом.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Collection, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Collection{}, errs.Invalid("name", "Name cannot be empty")
		}
		in.Name = &name
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		in.Description = &desc
	}

	return s.repo.Update(ctx, userID, id, in)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.log.Debug("collection deleted", "collection_id", id, "user_id", userID)
	return nil
}

func (s *Service) Progress(ctx context.Context, userID uuid.UUID) ([]Progress, error) {
	cols, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, userID, item.Filter{})
	if err != nil {
		return nil, err
	}

	return Summarize(cols, items), nil
}
