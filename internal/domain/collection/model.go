package collection

import (
	"time"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

type Collection struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

type CreateInput struct {
	Name        string
	Description *string
}

// UpdateInput - nil означает "не менять"; пустое описание очищает его.
type UpdateInput struct {
	Name        *string
	Description *string
}

// Progress - счетчики коллекции для карточек и CLI
type Progress struct {
	Collection        Collection
	ItemsCount        int
	CollectedCount    int
	CompletionPercent int
}

// Details - коллекция вместе с предметами
type Details struct {
	Progress
	Items []item.Item
}
