package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, s Session) error
	Find(ctx context.Context, id uuid.UUID) (Session, error)
	// Extend продлевает сессию и запоминает последний выданный токен
	Extend(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
