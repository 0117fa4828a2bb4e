package item

import (
	"time"

	"collectionhub/internal/domain/item"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID            uuid.UUID          `json:"id"`
	CollectionID  uuid.UUID          `json:"collectionId"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Image         *string            `json:"image"`
	Type          *string            `json:"type"`
	CollectStatus item.CollectStatus `json:"collectStatus"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func ToResponse(it item.Item) ItemResponse {
	return ItemResponse{
		ID:            it.ID,
		CollectionID:  it.CollectionID,
		Name:          it.Name,
		Description:   it.Description,
		Image:         it.Image,
		Type:          it.Type,
		CollectStatus: it.CollectStatus,
		CreatedAt:     it.CreatedAt,
	}
}

func ToResponses(items []item.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToResponse(it))
	}
	return out
}

type listInput struct {
	Type         string `query:"type" doc:"Filter by type, empty or 'all' disables the filter"`
	CollectionID string `query:"collectionId" doc:"Restrict to one collection"`
}

type listOutput struct {
	Body []ItemResponse
}

type createInput struct {
	Body struct {
		Name          string              `json:"name" maxLength:"200"`
		Description   string              `json:"description" maxLength:"2000"`
		Image         *string             `json:"image,omitempty" maxLength:"2048"`
		Type          *string             `json:"type,omitempty" maxLength:"100"`
		CollectionID  string              `json:"collectionId"`
		CollectStatus *item.CollectStatus `json:"collectStatus,omitempty"`
	}
}

type itemOutput struct {
	Body ItemResponse
}

type idInput struct {
	ID string `path:"id"`
}

type updateInput struct {
	ID   string `path:"id"`
	Body struct {
		Name          *string             `json:"name,omitempty" maxLength:"200"`
		Description   *string             `json:"description,omitempty" maxLength:"2000"`
		Image         *string             `json:"image,omitempty" maxLength:"2048" doc:"Empty string removes the image"`
		Type          *string             `json:"type,omitempty" maxLength:"100" doc:"Empty string removes the type"`
		CollectStatus *item.CollectStatus `json:"collectStatus,omitempty"`
	}
}

type deleteOutput struct {
	Body struct {
		Success bool `json:"success"`
	}
}

type typesInput struct {
	CollectionID string `query:"collectionId"`
}

type typesOutput struct {
	Body []string
}
