package collection

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const tag = "collections"

var cookieSecurity = []map[string][]string{{"cookieAuth": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-list",
		Method:      http.MethodGet,
		Path:        "/api/collections",
		Summary:     "Коллекции текущего пользователя",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "collections-create",
		Method:        http.MethodPost,
		Path:          "/api/collections",
		Summary:       "Создание коллекции",
		Tags:          []string{tag},
		DefaultStatus: http.StatusCreated,
		Security:      cookieSecurity,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) progressOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-progress",
		Method:      http.MethodGet,
		Path:        "/api/collections/progress",
		Summary:     "Прогресс сбора по каждой коллекции",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-get",
		Method:      http.MethodGet,
		Path:        "/api/collections/{id}",
		Summary:     "Коллекция с предметами",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-update",
		Method:      http.MethodPatch,
		Path:        "/api/collections/{id}",
		Summary:     "Изменение коллекции",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "collections-delete",
		Method:      http.MethodDelete,
		Path:        "/api/collections/{id}",
		Summary:     "Удаление коллекции вместе с предметами",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.middleware,
	}
}
