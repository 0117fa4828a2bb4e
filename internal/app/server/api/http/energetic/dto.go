package energetic

import (
	"collectionhub/internal/domain/energetic"
	"collectionhub/internal/domain/item"
)

type listInput struct {
	Type string `query:"type" doc:"Filter by type, empty or 'all' returns the whole catalog"`
}

type listOutput struct {
	Body []energetic.Energetic
}

type createInput struct {
	Body struct {
		Description string              `json:"description" maxLength:"2000"`
		Image       string              `json:"image" maxLength:"2048"`
		Type        string              `json:"type" maxLength:"100"`
		Collect     *item.CollectStatus `json:"collect,omitempty"`
	}
}

type createOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}
