package client

import (
	"time"

	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

// User - профиль текущего пользователя
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type collectionDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (d collectionDTO) toDomain() collection.Collection {
	return collection.Collection{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

type itemDTO struct {
	ID            uuid.UUID          `json:"id"`
	CollectionID  uuid.UUID          `json:"collectionId"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Image         *string            `json:"image"`
	Type          *string            `json:"type"`
	CollectStatus item.CollectStatus `json:"collectStatus"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func (d itemDTO) toDomain() item.Item {
	return item.Item{
		ID:            d.ID,
		CollectionID:  d.CollectionID,
		Name:          d.Name,
		Description:   d.Description,
		Image:         d.Image,
		Type:          d.Type,
		CollectStatus: d.CollectStatus,
		CreatedAt:     d.CreatedAt,
	}
}

// ItemInput - тело запроса на создание предмета
type ItemInput struct {
	CollectionID  string              `json:"collectionId"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Image         *string             `json:"image,omitempty"`
	Type          *string             `json:"type,omitempty"`
	CollectStatus *item.CollectStatus `json:"collectStatus,omitempty"`
}

// apiError - тело ошибки сервера (RFC 7807)
type apiError struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
}
