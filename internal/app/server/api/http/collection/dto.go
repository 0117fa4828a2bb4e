package collection

import (
	"time"

	itemhttp "collectionhub/internal/app/server/api/http/item"
	"collectionhub/internal/domain/collection"

	"github.com/google/uuid"
)

type CollectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(c collection.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

type ProgressResponse struct {
	Collection        CollectionResponse `json:"collection"`
	ItemsCount        int                `json:"itemsCount"`
	CollectedCount    int                `json:"collectedCount"`
	CompletionPercent int                `json:"completionPercent" minimum:"0" maximum:"100"`
}

func toProgress(p collection.Progress) ProgressResponse {
	return ProgressResponse{
		Collection:        toResponse(p.Collection),
		ItemsCount:        p.ItemsCount,
		CollectedCount:    p.CollectedCount,
		CompletionPercent: p.CompletionPercent,
	}
}

type DetailsResponse struct {
	ProgressResponse
	Items []itemhttp.ItemResponse `json:"items"`
}

type listInput struct{}

type listOutput struct {
	Body []CollectionResponse
}

type createInput struct {
	Body struct {
		Name        string  `json:"name" maxLength:"200"`
		Description *string `json:"description,omitempty" maxLength:"2000"`
	}
}

type collectionOutput struct {
	Body CollectionResponse
}

type idInput struct {
	ID string `path:"id"`
}

type detailsOutput struct {
	Body DetailsResponse
}

type updateInput struct {
	ID   string `path:"id"`
	Body struct {
		Name        *string `json:"name,omitempty" maxLength:"200"`
		Description *string `json:"description,omitempty" maxLength:"2000" doc:"Empty string removes the description"`
	}
}

type deleteOutput struct {
	Body struct {
		Success bool `json:"success"`
	}
}

type progressOutput struct {
	Body []ProgressResponse
}
