package energetic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/utils/validate"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const minDescriptionLen = 3

type Servicer interface {
	List(ctx context.Context, typ string) ([]Energetic, error)
	Create(ctx context.Context, in CreateInput) (Energetic, error)
	Import(ctx context.Context, r io.Reader) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "energetic"),
	}
}

func (s *Service) List(ctx context.Context, typ string) ([]Energetic, error) {
	list, err := s.repo.List(ctx, item.NormalizeTypeFilter(typ))
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Energetic{}
	}
	return list, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Energetic, error) {
	e, err := build(in)
	if err != nil {
		return Energetic{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Energetic{}, err
	}

	s.log.Debug("energetic added", "id", e.ID, "type", e.Type)
	return e, nil
}

// Import загружает каталог из JSON-массива записей; файл валидируется целиком
// до записи в базу. Повторный импорт того же файла ничего не добавляет.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	var raw []CreateInput
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	list := make([]Energetic, 0, len(raw))
	for i, in := range raw {
		e, err := build(in)
		if err != nil {
			return 0, fmt.Errorf("%w: entry %d: %v", ErrInvalidSeed, i, err)
		}
		list = append(list, e)
	}

	if len(list) == 0 {
		return 0, nil
	}

	n, err := s.repo.CreateBatch(ctx, list)
	if err != nil {
		return 0, err
	}

	s.log.Info("energetics imported", "count", n, "skipped", len(list)-n)
	return n, nil
}

func build(in CreateInput) (Energetic, error) {
	var verr errs.ValidationError

	desc := strings.TrimSpace(in.Description)
	img := strings.TrimSpace(in.Image)
	typ := strings.TrimSpace(in.Type)

	if len([]rune(desc)) < minDescriptionLen {
		verr.Add("description", "Description is required")
	}
	if !validate.HTTPURL(img) {
		verr.Add("image", "Image must be a valid URL")
	}
	if typ == "" {
		verr.Add("type", "Type is required")
	}

	collect := item.StatusUnknown
	if in.Collect != nil && *in.Collect != "" {
		if err := in.Collect.Validate(); err != nil {
			verr.Add("collect", "Invalid collect status")
		} else {
			collect = *in.Collect
		}
	}

	if err := verr.Err(); err != nil {
		return Energetic{}, err
	}

	return Energetic{
		ID:          uuid.New(),
		Description: desc,
		Image:       img,
		Collect:     collect,
		Type:        typ,
	}, nil
}
