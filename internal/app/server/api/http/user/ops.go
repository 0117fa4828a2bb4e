package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const tag = "auth"

var cookieSecurity = []map[string][]string{{"cookieAuth": {}}}

func (h *Handler) signupOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-signup",
		Method:        http.MethodPost,
		Path:          "/api/auth/signup",
		Summary:       "Регистрация пользователя",
		Tags:          []string{tag},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.throttled,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Вход по имени пользователя или email",
		Tags:        []string{tag},
		Middlewares: h.throttled,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-logout",
		Method:      http.MethodPost,
		Path:        "/api/auth/logout",
		Summary:     "Выход, сессия удаляется",
		Tags:        []string{tag},
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Текущий пользователь",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.protected,
	}
}

func (h *Handler) updateProfileOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-update-profile",
		Method:      http.MethodPatch,
		Path:        "/api/auth/me",
		Summary:     "Изменение имени и email",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.protected,
	}
}

func (h *Handler) changePasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-change-password",
		Method:      http.MethodPut,
		Path:        "/api/auth/me/password",
		Summary:     "Смена пароля",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteAccountOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-delete-account",
		Method:      http.MethodDelete,
		Path:        "/api/auth/me",
		Summary:     "Удаление аккаунта со всеми коллекциями",
		Tags:        []string{tag},
		Security:    cookieSecurity,
		Middlewares: h.protected,
	}
}
