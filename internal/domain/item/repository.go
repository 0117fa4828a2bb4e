package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository - все операции ограничены коллекциями пользователя userID.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]Item, error)
	// Create возвращает ErrForbidden, если коллекция не принадлежит пользователю
	Create(ctx context.Context, userID uuid.UUID, in CreateInput) (Item, error)
	Update(ctx context.Context, userID, id uuid.UUID, in UpdateInput) (Item, error)
	Toggle(ctx context.Context, userID, id uuid.UUID) (Item, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	UniqueTypes(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]string, error)
}
