package energetic

import (
	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

// Energetic - запись общего каталога. Collect хранится в каталоге как значение
// по умолчанию, личная отметка пользователя живет у клиента.
type Energetic struct {
	ID          uuid.UUID          `json:"id"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Collect     item.CollectStatus `json:"collect"`
	Type        string             `json:"type"`
}

type CreateInput struct {
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Type        string              `json:"type"`
	Collect     *item.CollectStatus `json:"collect,omitempty"`
}
