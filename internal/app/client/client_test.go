package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"collectionhub/internal/app/client/config"
	"collectionhub/internal/domain/energetic"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/domain/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// fakeServer отвечает как API сервера для одного пользователя
type fakeServer struct {
	token      string
	collection collectionDTO
	items      []itemDTO
	catalog    []energetic.Energetic
	lastQuery  string
	loggedOut  bool
}

func newFakeServer() *fakeServer {
	colID := uuid.New()
	book := "Book"
	return &fakeServer{
		token:      "valid-token",
		collection: collectionDTO{ID: colID, Name: "Books", CreatedAt: time.Now()},
		items: []itemDTO{
			{ID: uuid.New(), CollectionID: colID, Name: "Dune", Description: "d", Type: &book, CollectStatus: item.StatusCollected},
			{ID: uuid.New(), CollectionID: colID, Name: "Emma", Description: "e", CollectStatus: item.StatusUnknown},
			{ID: uuid.New(), CollectionID: colID, Name: "Ulysses", Description: "u", CollectStatus: item.StatusWillNotCollect},
		},
		catalog: []energetic.Energetic{
			{ID: uuid.New(), Description: "Red Bull", Image: "https://img/rb.png", Type: "can", Collect: item.StatusUnknown},
			{ID: uuid.New(), Description: "Monster", Image: "https://img/m.png", Type: "can", Collect: item.StatusUnknown},
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeServer) authorized(r *http.Request) bool {
	c, err := r.Cookie(session.CookieName)
	return err == nil && c.Value == f.token
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()

	unauthorized := func(w http.ResponseWriter) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"title": "Unauthorized", "status": 401, "detail": "Unauthorized"})
	}

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "Secret123!" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"status": 401, "detail": "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: f.token, Path: "/"})
		writeJSON(w, http.StatusOK, User{ID: uuid.New(), Username: body["login"], Email: "a@example.com"})
	})
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"status": 409,
			"detail": "User already exists",
		})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.loggedOut = f.authorized(r)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			unauthorized(w)
			return
		}
		writeJSON(w, http.StatusOK, User{Username: "alice"})
	})
	mux.HandleFunc("GET /api/collections", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			unauthorized(w)
			return
		}
		writeJSON(w, http.StatusOK, []collectionDTO{f.collection})
	})
	mux.HandleFunc("POST /api/collections", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name        string  `json:"name"`
			Description *string `json:"description"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if strings.TrimSpace(body.Name) == "" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"status": 422,
				"detail": "validation failed",
				"errors": []map[string]string{{"message": "Name is required", "location": "body.name"}},
			})
			return
		}
		writeJSON(w, http.StatusCreated, collectionDTO{ID: uuid.New(), Name: body.Name, Description: body.Description})
	})
	mux.HandleFunc("DELETE /api/collections/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != f.collection.ID.String() {
			writeJSON(w, http.StatusNotFound, map[string]any{"status": 404, "detail": "Collection not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	})
	mux.HandleFunc("GET /api/items", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			unauthorized(w)
			return
		}
		f.lastQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, f.items)
	})
	mux.HandleFunc("POST /api/items/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		it := f.items[1]
		it.CollectStatus = it.CollectStatus.Toggled()
		writeJSON(w, http.StatusOK, it)
	})
	mux.HandleFunc("GET /api/energetics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.catalog)
	})

	return mux
}

func newTestApp(t *testing.T, srv *fakeServer) *App {
	t.Helper()

	ts := httptest.NewServer(srv.handler())
	t.Cleanup(ts.Close)

	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(ts.URL, "http://"),
		DataPath:      filepath.Join(t.TempDir(), "hubctl.db"),
	}

	app, err := New(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func login(t *testing.T, app *App) {
	t.Helper()
	_, err := app.Login(context.Background(), "alice", "Secret123!")
	require.NoError(t, err)
}

func TestApp_LoginPersistsSession(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	ctx := context.Background()

	assert.False(t, app.IsAuthenticated())
	_, err := app.Me(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = app.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, app.IsAuthenticated())

	u, err := app.Login(ctx, "alice", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice", app.Username())

	// новая копия приложения видит сохраненную сессию
	reopened, err := New(app.config, slog.Default())
	require.NoError(t, err)
	defer reopened.Close()

	me, err := reopened.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)
}

func TestApp_Signup_Conflict(t *testing.T) {
	app := newTestApp(t, newFakeServer())

	_, err := app.Signup(context.Background(), "alice", "a@example.com", "Secret123!")
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "User already exists")
	assert.False(t, app.IsAuthenticated())
}

func TestApp_Logout(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	ctx := context.Background()

	assert.ErrorIs(t, app.Logout(ctx), ErrNoSession)

	login(t, app)
	require.NoError(t, app.Logout(ctx))
	assert.True(t, srv.loggedOut)
	assert.False(t, app.IsAuthenticated())

	_, err := app.storage.Session()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestApp_ExpiredSessionIsDropped(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	login(t, app)

	srv.token = "rotated"

	_, err := app.Me(context.Background())
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.False(t, app.IsAuthenticated())
}

func TestApp_Progress(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	login(t, app)

	progress, err := app.Progress(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 1)

	p := progress[0]
	assert.Equal(t, "Books", p.Collection.Name)
	assert.Equal(t, 3, p.ItemsCount)
	assert.Equal(t, 2, p.CollectedCount)
	assert.Equal(t, 67, p.CompletionPercent)
}

func TestApp_Collections(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	login(t, app)
	ctx := context.Background()

	c, err := app.CreateCollection(ctx, "Stamps", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Stamps", c.Name)
	assert.Nil(t, c.Description)

	_, err = app.CreateCollection(ctx, " ", "")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Name is required")

	require.NoError(t, app.DeleteCollection(ctx, srv.collection.ID.String()))
	assert.ErrorIs(t, app.DeleteCollection(ctx, uuid.NewString()), errs.ErrNotFound)
}

func TestApp_Items(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	login(t, app)
	ctx := context.Background()

	items, err := app.Items(ctx, "Book", srv.collection.ID.String())
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Contains(t, srv.lastQuery, "type=Book")
	assert.Contains(t, srv.lastQuery, "collectionId="+srv.collection.ID.String())

	it, err := app.ToggleItem(ctx, srv.items[1].ID.String())
	require.NoError(t, err)
	assert.Equal(t, item.StatusCollected, it.CollectStatus)
}

func TestApp_EnergeticMarks(t *testing.T) {
	srv := newFakeServer()
	app := newTestApp(t, srv)
	ctx := context.Background()
	target := srv.catalog[1].ID

	require.NoError(t, app.MarkEnergetic(ctx, target.String(), "collected"))

	list, err := app.Energetics(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, item.StatusUnknown, list[0].Collect)
	assert.Equal(t, item.StatusCollected, list[1].Collect)

	assert.ErrorIs(t, app.MarkEnergetic(ctx, "nope", "collected"), errs.ErrInvalidInput)
	assert.ErrorIs(t, app.MarkEnergetic(ctx, target.String(), "lost"), errs.ErrInvalidInput)
	assert.ErrorIs(t, app.MarkEnergetic(ctx, uuid.NewString(), "collected"), errs.ErrNotFound)
}

func TestApp_CheckConnection(t *testing.T) {
	app := newTestApp(t, newFakeServer())
	assert.NoError(t, app.CheckConnection(context.Background()))
}
