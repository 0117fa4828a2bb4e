package auth

import (
	"context"
	"errors"
	"net/http"

	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Auth struct {
	api     huma.API
	session session.Servicer
	log     *slog.Logger
}

func New(api huma.API, session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		api:     api,
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const (
	UserIDKey contextKey = "userID"
	TokenKey  contextKey = "sessionToken"
)

// Middleware проверяет cookie сессии; без нее запрос получает 401.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cookie, err := huma.ReadCookie(ctx, session.CookieName)
		if err != nil || cookie.Value == "" {
			a.unauthorized(ctx)
			return
		}

		userID, err := a.session.Validate(ctx.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, errs.ErrUnauthorized) {
				a.log.Debug("session rejected", "error", err)
				a.unauthorized(ctx)
				return
			}
			a.log.Error("validate session", "error", err)
			_ = huma.WriteErr(a.api, ctx, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		newCtx := WithToken(WithUserID(ctx.Context(), userID), cookie.Value)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, "Unauthorized"); err != nil {
		a.log.Error("write error response", "error", err)
	}
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}

// RequireUserID - для обработчиков за auth middleware. Отсутствие
// пользователя в контексте означает ошибку маршрутизации, поэтому 401.
func RequireUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := GetUserID(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("Unauthorized")
	}
	return userID, nil
}
