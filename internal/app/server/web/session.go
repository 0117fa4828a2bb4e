package web

import (
	"context"
	"errors"
	"net/http"

	"collectionhub/internal/app/server/api/http/middleware/auth"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/session"
	"collectionhub/internal/domain/user"
)

type ctxKey struct{}

// requireSession продлевает сессию на каждом защищенном просмотре.
// Продление не меняет id сессии, параллельные запросы со старой cookie
// проходят.
// Без действующей сессии - 303 на /login.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			redirect(w, r, "/login")
			return
		}

		sess, err := h.deps.Sessions.Refresh(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, errs.ErrUnauthorized) {
				// сбой хранилища: cookie не трогаем, сессия может быть жива
				h.serverError(w, err)
				return
			}
			h.log.Debug("session rejected", "path", r.URL.Path, "error", err)
			http.SetCookie(w, session.ExpiredCookie(h.cookieSecure))
			redirect(w, r, "/login")
			return
		}
		http.SetCookie(w, session.NewCookie(sess, h.cookieSecure))

		u, err := h.deps.Users.Get(r.Context(), sess.UserID)
		if err != nil {
			if !errors.Is(err, errs.ErrNotFound) {
				h.serverError(w, err)
				return
			}
			// пользователь удален, а сессия еще жива
			_ = h.deps.Sessions.Revoke(r.Context(), sess.Token)
			http.SetCookie(w, session.ExpiredCookie(h.cookieSecure))
			redirect(w, r, "/login")
			return
		}

		ctx := auth.WithToken(auth.WithUserID(r.Context(), u.ID), sess.Token)
		ctx = context.WithValue(ctx, ctxKey{}, &u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUser(ctx context.Context) *user.User {
	u, _ := ctx.Value(ctxKey{}).(*user.User)
	return u
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, u user.User) bool {
	sess, err := h.deps.Sessions.Create(r.Context(), u.ID)
	if err != nil {
		h.serverError(w, err)
		return false
	}
	http.SetCookie(w, session.NewCookie(sess, h.cookieSecure))
	return true
}
