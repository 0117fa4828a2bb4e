package web

import (
	"errors"
	"net/http"
	"strings"

	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/domain/session"
	"collectionhub/internal/domain/user"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// formErrors - ошибки полей для шаблона; не-валидационные ошибки
// возвращаются как есть.
func formErrors(err error) (map[string]string, bool) {
	if !errors.Is(err, errs.ErrInvalidInput) {
		return nil, false
	}
	fields := errs.FieldMessages(err)
	if len(fields) == 0 {
		fields = map[string]string{"form": err.Error()}
	}
	return fields, true
}

func formValues(r *http.Request, names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = r.PostFormValue(n)
	}
	return out
}

// fail рендерит страницу с ошибками полей либо отвечает статусом по виду ошибки.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, page string, v view, err error) {
	if fields, ok := formErrors(err); ok {
		v.Errors = fields
		h.render(w, http.StatusBadRequest, page, v)
		return
	}
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrForbidden):
		http.NotFound(w, r)
	default:
		h.serverError(w, err)
	}
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// back - локальный путь возврата из формы, иначе fallback
func back(r *http.Request, fallback string) string {
	to := r.PostFormValue("back")
	if strings.HasPrefix(to, "/") && !strings.HasPrefix(to, "//") {
		return to
	}
	return fallback
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login.html", view{Title: "Log in"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	v := view{Title: "Log in", Form: formValues(r, "login")}

	u, err := h.deps.Users.Authenticate(r.Context(), r.PostFormValue("login"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			v.Errors = map[string]string{"form": "Invalid username/email or password"}
			h.render(w, http.StatusUnauthorized, "login.html", v)
			return
		}
		h.serverError(w, err)
		return
	}

	if h.startSession(w, r, u) {
		redirect(w, r, "/")
	}
}

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "signup.html", view{Title: "Sign up"})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	v := view{Title: "Sign up", Form: formValues(r, "username", "email")}

	u, err := h.deps.Users.Register(r.Context(), user.SignupInput{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			v.Errors = map[string]string{"form": "Username or email is already taken"}
			h.render(w, http.StatusConflict, "signup.html", v)
			return
		}
		h.fail(w, r, "signup.html", v, err)
		return
	}

	if h.startSession(w, r, u) {
		redirect(w, r, "/")
	}
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		if err := h.deps.Sessions.Revoke(r.Context(), cookie.Value); err != nil {
			h.log.Warn("revoke session", "error", err)
		}
	}
	http.SetCookie(w, session.ExpiredCookie(h.cookieSecure))
	redirect(w, r, "/login")
}

type homeData struct {
	Progress  []collection.Progress
	Items     int
	Collected int
	Percent   int
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	progress, err := h.deps.Collections.Progress(r.Context(), u.ID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	data := homeData{Progress: progress}
	data.Items, data.Collected, data.Percent = collection.Totals(progress)

	h.render(w, http.StatusOK, "home.html", view{Title: "Home", User: u, Data: data})
}

func (h *Handler) collectionsView(r *http.Request, u *user.User) (view, error) {
	progress, err := h.deps.Collections.Progress(r.Context(), u.ID)
	if err != nil {
		return view{}, err
	}
	return view{Title: "Collections", User: u, Data: progress}, nil
}

func (h *Handler) collections(w http.ResponseWriter, r *http.Request) {
	v, err := h.collectionsView(r, currentUser(r.Context()))
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, http.StatusOK, "collections.html", v)
}

func (h *Handler) createCollection(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	desc := r.PostFormValue("description")
	c, err := h.deps.Collections.Create(r.Context(), u.ID, collection.CreateInput{
		Name:        r.PostFormValue("name"),
		Description: &desc,
	})
	if err != nil {
		v, verr := h.collectionsView(r, u)
		if verr != nil {
			h.serverError(w, verr)
			return
		}
		v.Form = formValues(r, "name", "description")
		h.fail(w, r, "collections.html", v, err)
		return
	}

	redirect(w, r, "/collections/"+c.ID.String())
}

type collectionData struct {
	Details collection.Details
	Items   []item.Item
	Types   []string
	Type    string
}

func (h *Handler) collectionView(r *http.Request, u *user.User, id uuid.UUID) (view, error) {
	d, err := h.deps.Collections.Get(r.Context(), u.ID, id)
	if err != nil {
		return view{}, err
	}

	typ := item.NormalizeTypeFilter(r.URL.Query().Get("type"))
	return view{
		Title: d.Collection.Name,
		User:  u,
		Data: collectionData{
			Details: d,
			Items:   collection.FilterByType(d.Items, typ),
			Types:   collection.UniqueTypes(d.Items),
			Type:    typ,
		},
	}, nil
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	v, err := h.collectionView(r, currentUser(r.Context()), id)
	if err != nil {
		h.fail(w, r, "collection.html", view{}, err)
		return
	}
	h.render(w, http.StatusOK, "collection.html", v)
}

func (h *Handler) updateCollection(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name, desc := r.PostFormValue("name"), r.PostFormValue("description")
	_, err := h.deps.Collections.Update(r.Context(), u.ID, id, collection.UpdateInput{Name: &name, Description: &desc})
	if err != nil {
		h.collectionFormFailed(w, r, u, id, err)
		return
	}

	redirect(w, r, "/collections/"+id.String())
}

// collectionFormFailed повторно рендерит страницу коллекции с ошибками формы.
func (h *Handler) collectionFormFailed(w http.ResponseWriter, r *http.Request, u *user.User, id uuid.UUID, err error) {
	if _, ok := formErrors(err); !ok {
		h.fail(w, r, "collection.html", view{}, err)
		return
	}
	v, verr := h.collectionView(r, u, id)
	if verr != nil {
		h.fail(w, r, "collection.html", view{}, verr)
		return
	}
	v.Form = formValues(r, "name", "description", "image", "type")
	h.fail(w, r, "collection.html", v, err)
}

func (h *Handler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.deps.Collections.Delete(r.Context(), currentUser(r.Context()).ID, id); err != nil {
		h.fail(w, r, "collections.html", view{}, err)
		return
	}
	redirect(w, r, "/collections")
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	image, typ := r.PostFormValue("image"), r.PostFormValue("type")
	in := item.CreateInput{
		CollectionID: id,
		Name:         r.PostFormValue("name"),
		Description:  r.PostFormValue("description"),
		Image:        &image,
		Type:         &typ,
	}
	if raw := r.PostFormValue("collectStatus"); raw != "" {
		st := item.CollectStatus(raw)
		in.CollectStatus = &st
	}

	if _, err := h.deps.Items.Create(r.Context(), u.ID, in); err != nil {
		h.collectionFormFailed(w, r, u, id, err)
		return
	}

	redirect(w, r, "/collections/"+id.String())
}

type itemsData struct {
	Items       []item.Item
	Types       []string
	Type        string
	Collections map[uuid.UUID]string
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	typ := item.NormalizeTypeFilter(r.URL.Query().Get("type"))

	items, err := h.deps.Items.List(r.Context(), u.ID, item.Filter{Type: typ})
	if err != nil {
		h.serverError(w, err)
		return
	}
	types, err := h.deps.Items.UniqueTypes(r.Context(), u.ID, nil)
	if err != nil {
		h.serverError(w, err)
		return
	}
	cols, err := h.deps.Collections.List(r.Context(), u.ID)
	if err != nil {
		h.serverError(w, err)
		return
	}

	names := make(map[uuid.UUID]string, len(cols))
	for _, c := range cols {
		names[c.ID] = c.Name
	}

	h.render(w, http.StatusOK, "items.html", view{
		Title: "Items",
		User:  u,
		Data:  itemsData{Items: items, Types: types, Type: typ, Collections: names},
	})
}

func (h *Handler) toggleItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	it, err := h.deps.Items.Toggle(r.Context(), currentUser(r.Context()).ID, id)
	if err != nil {
		h.fail(w, r, "items.html", view{}, err)
		return
	}
	redirect(w, r, back(r, "/collections/"+it.CollectionID.String()))
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.deps.Items.Delete(r.Context(), currentUser(r.Context()).ID, id); err != nil {
		h.fail(w, r, "items.html", view{}, err)
		return
	}
	redirect(w, r, back(r, "/items"))
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	v := view{Title: "Profile", User: currentUser(r.Context())}
	if r.URL.Query().Get("saved") != "" {
		v.Flash = "Changes saved"
	}
	h.render(w, http.StatusOK, "profile.html", v)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	v := view{Title: "Profile", User: u, Form: formValues(r, "username", "email")}

	_, err := h.deps.Users.UpdateProfile(r.Context(), u.ID, r.PostFormValue("username"), r.PostFormValue("email"))
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			v.Errors = map[string]string{"form": "Username or email is already taken"}
			h.render(w, http.StatusConflict, "profile.html", v)
			return
		}
		h.fail(w, r, "profile.html", v, err)
		return
	}

	redirect(w, r, "/profile?saved=1")
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	err := h.deps.Users.ChangePassword(r.Context(), u.ID, user.PasswordChange{
		CurrentPassword: r.PostFormValue("currentPassword"),
		NewPassword:     r.PostFormValue("newPassword"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	})
	if err != nil {
		h.fail(w, r, "profile.html", view{Title: "Profile", User: u}, err)
		return
	}

	redirect(w, r, "/profile?saved=1")
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	if err := h.deps.Users.Delete(r.Context(), u.ID); err != nil {
		h.serverError(w, err)
		return
	}

	// сессии удалены каскадом
	http.SetCookie(w, session.ExpiredCookie(h.cookieSecure))
	redirect(w, r, "/signup")
}
