package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const tag = "items"

var cookieSecurity = []map[string][]string{{"cookieAuth": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-list",
		Method:      http.MethodGet,
		Path:        "/api/items",
		Summary:     "Предметы пользователя с фильтром по типу",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-create",
		Method:        http.MethodPost,
		Path:          "/api/items",
		Summary:       "Добавление предмета в свою коллекцию",
		Tags:          []string{tag},
		DefaultStatus: http.StatusCreated,
		Security:      cookieSecurity,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) typesOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-types",
		Method:      http.MethodGet,
		Path:        "/api/items/types",
		Summary:     "Уникальные типы предметов",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-update",
		Method:      http.MethodPatch,
		Path:        "/api/items/{id}",
		Summary:     "Изменение предмета",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-toggle",
		Method:      http.MethodPost,
		Path:        "/api/items/{id}/toggle",
		Summary:     "Переключение статуса collected/unknown",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-delete",
		Method:      http.MethodDelete,
		Path:        "/api/items/{id}",
		Summary:     "Удаление предмета",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}
