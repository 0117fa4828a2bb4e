package collection

import (
	"context"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

// Repository - все методы ограничены владельцем userID; чужая коллекция
// неотличима от несуществующей (ErrNotFound).
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]Collection, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Collection, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Collection, error)
	Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Collection, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ItemLister - часть репозитория предметов, нужная для прогресса.
type ItemLister interface {
	List(ctx context.Context, userID uuid.UUID, f item.Filter) ([]item.Item, error)
}
