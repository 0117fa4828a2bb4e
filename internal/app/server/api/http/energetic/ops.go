package energetic

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "energetics-list",
		Method:      http.MethodGet,
		Path:        "/api/energetics",
		Summary:     "Каталог энергетиков",
		Tags:        []string{"energetics"},
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "energetics-create",
		Method:        http.MethodPost,
		Path:          "/api/energetics",
		Summary:       "Добавление энергетика в каталог",
		Tags:          []string{"energetics"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"cookieAuth": {}}},
		Middlewares:   h.middleware,
	}
}
