package user

import (
	"context"

	"collectionhub/internal/app/server/api/http/apierr"
	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/domain/session"
	"collectionhub/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service      user.Servicer
	session      session.Servicer
	cookieSecure bool
	log          *slog.Logger
	throttled    huma.Middlewares
	protected    huma.Middlewares
}

// NewHandler: throttled - для signup и login, protected - для /me.
func NewHandler(
	service user.Servicer,
	session session.Servicer,
	cookieSecure bool,
	log *slog.Logger,
	throttled huma.Middlewares,
	protected huma.Middlewares,
) *Handler {
	return &Handler{
		service:      service,
		session:      session,
		cookieSecure: cookieSecure,
		log:          log,
		throttled:    throttled,
		protected:    protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signupOp(), h.signup)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.updateProfileOp(), h.updateProfile)
	huma.Register(api, h.changePasswordOp(), h.changePassword)
	huma.Register(api, h.deleteAccountOp(), h.deleteAccount)
}

func (h *Handler) signup(ctx context.Context, input *signupInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, user.SignupInput{
		Username: input.Body.Username,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return h.startSession(ctx, u)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return h.startSession(ctx, u)
}

func (h *Handler) startSession(ctx context.Context, u user.User) (*authOutput, error) {
	sess, err := h.session.Create(ctx, u.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &authOutput{
		SetCookie: *session.NewCookie(sess, h.cookieSecure),
		Body:      toResponse(u),
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	if err := h.session.Revoke(ctx, input.Session); err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &logoutOutput{
		SetCookie: *session.ExpiredCookie(h.cookieSecure),
		Body:      successBody{Success: true},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *meInput) (*meOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Get(ctx, userID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &meOutput{Body: toResponse(u)}, nil
}

func (h *Handler) updateProfile(ctx context.Context, input *updateProfileInput) (*meOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.service.UpdateProfile(ctx, userID, input.Body.Username, input.Body.Email)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &meOutput{Body: toResponse(u)}, nil
}

func (h *Handler) changePassword(ctx context.Context, input *changePasswordInput) (*changePasswordOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	err = h.service.ChangePassword(ctx, userID, user.PasswordChange{
		CurrentPassword: input.Body.CurrentPassword,
		NewPassword:     input.Body.NewPassword,
		ConfirmPassword: input.Body.ConfirmPassword,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &changePasswordOutput{Body: successBody{Success: true}}, nil
}

func (h *Handler) deleteAccount(ctx context.Context, _ *meInput) (*logoutOutput, error) {
	userID, err := auth.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	// сессии удаляются каскадом вместе с пользователем
	if err := h.service.Delete(ctx, userID); err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &logoutOutput{
		SetCookie: *session.ExpiredCookie(h.cookieSecure),
		Body:      successBody{Success: true},
	}, nil
}
