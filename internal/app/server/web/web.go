// Package web - серверные HTML-страницы поверх тех же сервисов, что и JSON API.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/domain/session"
	"collectionhub/internal/domain/user"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{
	"home.html",
	"login.html",
	"signup.html",
	"collections.html",
	"collection.html",
	"items.html",
	"profile.html",
}

type Deps struct {
	Users       user.Servicer
	Sessions    session.Servicer
	Collections collection.Servicer
	Items       item.Servicer
}

type Handler struct {
	deps         Deps
	cookieSecure bool
	templates    map[string]*template.Template
	log          *slog.Logger
}

// NewHandler разбирает шаблоны один раз; ошибка в шаблоне - ошибка сборки.
func NewHandler(deps Deps, cookieSecure bool, log *slog.Logger) *Handler {
	return &Handler{
		deps:         deps,
		cookieSecure: cookieSecure,
		templates:    mustParse(),
		log:          log.With("component", "web"),
	}
}

var funcs = template.FuncMap{
	"statuses":    func() []item.CollectStatus { return item.Statuses },
	"statusLabel": statusLabel,
}

func statusLabel(s item.CollectStatus) string {
	switch s {
	case item.StatusCollected:
		return "Collected"
	case item.StatusWillNotCollect:
		return "Will not collect"
	default:
		return "Not collected yet"
	}
}

func mustParse() map[string]*template.Template {
	out := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			panic(fmt.Sprintf("parse template %s: %v", page, err))
		}
		out[page] = tpl
	}
	return out
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Get("/signup", h.signupForm)
	r.Post("/signup", h.signup)
	r.Post("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/", h.home)
		r.Get("/collections", h.collections)
		r.Post("/collections", h.createCollection)
		r.Get("/collections/{id}", h.collection)
		r.Post("/collections/{id}/edit", h.updateCollection)
		r.Post("/collections/{id}/delete", h.deleteCollection)
		r.Post("/collections/{id}/items", h.createItem)
		r.Get("/items", h.items)
		r.Post("/items/{id}/toggle", h.toggleItem)
		r.Post("/items/{id}/delete", h.deleteItem)
		r.Get("/profile", h.profile)
		r.Post("/profile", h.updateProfile)
		r.Post("/profile/password", h.changePassword)
		r.Post("/profile/delete", h.deleteAccount)
	})
}

// view - данные для layout.html и страницы
type view struct {
	Title  string
	User   *user.User
	Flash  string
	Form   map[string]string
	Errors map[string]string
	Data   any
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, v view) {
	tpl, ok := h.templates[page]
	if !ok {
		h.log.Error("unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// рендер в буфер, чтобы ошибка шаблона не оставила полстраницы
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, v); err != nil {
		h.log.Error("render template", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.log.Error("page failed", "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
