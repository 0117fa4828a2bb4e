// Package apierr переводит доменные ошибки в ответы huma.
package apierr

import (
	"errors"
	"net/http"

	"collectionhub/internal/domain/errs"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

func init() {
	// ошибки схемы запроса отдаем как 400, а не 422
	newError := huma.NewError
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return newError(status, msg, errs...)
	}
}

const internalMessage = "Internal Server Error"

// From сопоставляет err со статусом. Неожиданные ошибки логируются,
// а клиент получает обезличенный 500.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var verr *errs.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]error, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, &huma.ErrorDetail{
				Location: "body." + f.Field,
				Message:  f.Message,
			})
		}
		return huma.Error400BadRequest("Validation failed", details...)
	case errors.Is(err, errs.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return huma.Error403Forbidden(err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, errs.ErrConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, errs.ErrUnavailable):
		return huma.Error503ServiceUnavailable(err.Error())
	}

	if log != nil {
		log.Error("unexpected error", slog.String("error", err.Error()))
	}
	return huma.Error500InternalServerError(internalMessage)
}

// NotFound - ответ для неразобранного идентификатора в пути
func NotFound(what string) error {
	return huma.Error404NotFound(what + " not found")
}

// ParseID разбирает идентификатор из пути. Некорректный id неотличим
// от чужого или несуществующего.
func ParseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NotFound(what)
	}
	return id, nil
}
