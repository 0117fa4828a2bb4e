package item

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID            uuid.UUID
	CollectionID  uuid.UUID
	Name          string
	Description   string
	Image         *string
	Type          *string
	CollectStatus CollectStatus
	CreatedAt     time.Time
}

// TypeName возвращает тип или пустую строку.
func (i Item) TypeName() string {
	if i.Type == nil {
		return ""
	}
	return *i.Type
}

type CreateInput struct {
	CollectionID  uuid.UUID
	Name          string
	Description   string
	Image         *string
	Type          *string
	CollectStatus *CollectStatus
}

// UpdateInput - nil означает "поле не менять". Пустые Image и Type очищают значение.
type UpdateInput struct {
	Name          *string
	Description   *string
	Image         *string
	Type          *string
	CollectStatus *CollectStatus
}

// AllTypes - значение фильтра, отключающее фильтрацию по типу
const AllTypes = "all"

type Filter struct {
	Type         string
	CollectionID *uuid.UUID
}
