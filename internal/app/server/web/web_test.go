package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"collectionhub/internal/domain/collection"
	"collectionhub/internal/domain/errs"
	"collectionhub/internal/domain/item"
	"collectionhub/internal/domain/session"
	"collectionhub/internal/domain/user"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockUsers struct{ mock.Mock }

func (m *MockUsers) Register(ctx context.Context, in user.SignupInput) (user.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUsers) Authenticate(ctx context.Context, login, password string) (user.User, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUsers) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUsers) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (user.User, error) {
	args := m.Called(ctx, id, username, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUsers) ChangePassword(ctx context.Context, id uuid.UUID, in user.PasswordChange) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *MockUsers) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSessions struct{ mock.Mock }

func (m *MockSessions) Create(ctx context.Context, userID uuid.UUID) (session.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *MockSessions) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessions) Refresh(ctx context.Context, token string) (session.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *MockSessions) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type MockCollections struct{ mock.Mock }

func (m *MockCollections) List(ctx context.Context, userID uuid.UUID) ([]collection.Collection, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]collection.Collection), args.Error(1)
}

func (m *MockCollections) Get(ctx context.Context, userID, id uuid.UUID) (collection.Details, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(collection.Details), args.Error(1)
}

func (m *MockCollections) Create(ctx context.Context, userID uuid.UUID, in collection.CreateInput) (collection.Collection, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(collection.Collection), args.Error(1)
}

func (m *MockCollections) Update(ctx context.Context, userID, id uuid.UUID, in collection.UpdateInput) (collection.Collection, error) {
	args := m.Called(ctx, userID, id, in)
	return args.Get(0).(collection.Collection), args.Error(1)
}

func (m *MockCollections) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockCollections) Progress(ctx context.Context, userID uuid.UUID) ([]collection.Progress, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]collection.Progress), args.Error(1)
}

type MockItems struct{ mock.Mock }

func (m *MockItems) List(ctx context.Context, userID uuid.UUID, f item.Filter) ([]item.Item, error) {
	args := m.Called(ctx, userID, f)
	return args.Get(0).([]item.Item), args.Error(1)
}

func (m *MockItems) Create(ctx context.Context, userID uuid.UUID, in item.CreateInput) (item.Item, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(item.Item), args.Error(1)
}

func (m *MockItems) Update(ctx context.Context, userID, id uuid.UUID, in item.UpdateInput) (item.Item, error) {
	args := m.Called(ctx, userID, id, in)
	return args.Get(0).(item.Item), args.Error(1)
}

func (m *MockItems) Toggle(ctx context.Context, userID, id uuid.UUID) (item.Item, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(item.Item), args.Error(1)
}

func (m *MockItems) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockItems) UniqueTypes(ctx context.Context, userID uuid.UUID, collectionID *uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID, collectionID)
	return args.Get(0).([]string), args.Error(1)
}

type fixture struct {
	users       *MockUsers
	sessions    *MockSessions
	collections *MockCollections
	items       *MockItems
	router      chi.Router
	user        user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:       new(MockUsers),
		sessions:    new(MockSessions),
		collections: new(MockCollections),
		items:       new(MockItems),
		router:      chi.NewRouter(),
		user:        user.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()},
	}
	NewHandler(Deps{
		Users:       f.users,
		Sessions:    f.sessions,
		Collections: f.collections,
		Items:       f.items,
	}, false, slog.Default()).SetupRoutes(f.router)
	return f
}

// loggedIn настраивает продление сессии для cookie "tok"
func (f *fixture) loggedIn() {
	f.sessions.On("Refresh", mock.Anything, "tok").
		Return(session.Session{UserID: f.user.ID, Token: "tok2", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	f.users.On("Get", mock.Anything, f.user.ID).Return(f.user, nil)
}

func (f *fixture) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestProtectedPage_NoCookie(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/collections", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	f.sessions.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestProtectedPage_InvalidSession(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Refresh", mock.Anything, "tok").Return(session.Session{}, session.ErrInvalidToken)

	rec := f.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestProtectedPage_SessionStoreDown(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Refresh", mock.Anything, "tok").
		Return(session.Session{}, errors.New("connection refused"))

	rec := f.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
	f.users.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestHome_ShowsTotals(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	books := collection.Collection{ID: uuid.New(), Name: "Books"}
	f.collections.On("Progress", mock.Anything, f.user.ID).Return([]collection.Progress{
		{Collection: books, ItemsCount: 3, CollectedCount: 2, CompletionPercent: 67},
		{Collection: collection.Collection{ID: uuid.New(), Name: "Coins"}, ItemsCount: 1},
	}, nil)

	rec := f.do(http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome back, alice")
	assert.Contains(t, body, "Items: 4")
	assert.Contains(t, body, "Collected: 2 (50%)")
	assert.Contains(t, body, "/collections/"+books.ID.String())
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "session=tok2")
}

func TestLogin(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("Authenticate", mock.Anything, "alice", "nope").Return(user.User{}, user.ErrInvalidCredentials)

		rec := f.do(http.MethodPost, "/login", url.Values{"login": {"alice"}, "password": {"nope"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username/email or password")
		assert.Contains(t, rec.Body.String(), `value="alice"`)
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("Authenticate", mock.Anything, "alice", "Str0ng!pass").Return(f.user, nil)
		f.sessions.On("Create", mock.Anything, f.user.ID).
			Return(session.Session{Token: "fresh", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		rec := f.do(http.MethodPost, "/login", url.Values{"login": {"alice"}, "password": {"Str0ng!pass"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "session=fresh")
	})
}

func TestSignup_FieldErrors(t *testing.T) {
	f := newFixture(t)

	var verr errs.ValidationError
	verr.Add("username", "Username is required")
	verr.Add("password", "Password must be at least 8 characters long")
	f.users.On("Register", mock.Anything, mock.Anything).Return(user.User{}, verr.Err())

	rec := f.do(http.MethodPost, "/signup", url.Values{"username": {""}, "email": {"bob@example.com"}, "password": {"x"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Username is required")
	assert.Contains(t, body, "Password must be at least 8 characters long")
	assert.Contains(t, body, `value="bob@example.com"`)
	f.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Revoke", mock.Anything, "tok").Return(nil)

	rec := f.do(http.MethodPost, "/logout", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	f.sessions.AssertExpectations(t)
}

func TestCreateCollection_BlankName(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	f.collections.On("Create", mock.Anything, f.user.ID, mock.Anything).
		Return(collection.Collection{}, errs.Invalid("name", "Name is required"))
	f.collections.On("Progress", mock.Anything, f.user.ID).Return([]collection.Progress{}, nil)

	rec := f.do(http.MethodPost, "/collections", url.Values{"name": {"  "}, "description": {"old books"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name is required")
	assert.Contains(t, rec.Body.String(), "old books")
}

func TestCollectionPage(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	c := collection.Collection{ID: uuid.New(), Name: "Books"}
	fiction, comics := "Fiction", "Comics"
	items := []item.Item{
		{ID: uuid.New(), CollectionID: c.ID, Name: "Dune", Type: &fiction, CollectStatus: item.StatusCollected},
		{ID: uuid.New(), CollectionID: c.ID, Name: "Watchmen", Type: &comics},
	}
	f.collections.On("Get", mock.Anything, f.user.ID, c.ID).
		Return(collection.Details{Progress: collection.ProgressOf(c, items), Items: items}, nil)

	rec := f.do(http.MethodGet, "/collections/"+c.ID.String()+"?type=Fiction", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Dune")
	assert.NotContains(t, body, "<strong>Watchmen</strong>")
	assert.Contains(t, body, "1 / 2 collected (50%)")
}

func TestCollectionPage_NotFound(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	rec := f.do(http.MethodGet, "/collections/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	id := uuid.New()
	f.collections.On("Get", mock.Anything, f.user.ID, id).Return(collection.Details{}, collection.ErrNotFound)
	rec = f.do(http.MethodGet, "/collections/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleItem_RedirectsBack(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	id, collectionID := uuid.New(), uuid.New()
	f.items.On("Toggle", mock.Anything, f.user.ID, id).
		Return(item.Item{ID: id, CollectionID: collectionID, CollectStatus: item.StatusCollected}, nil)

	rec := f.do(http.MethodPost, "/items/"+id.String()+"/toggle", url.Values{"back": {"/items"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/items", rec.Header().Get("Location"))

	rec = f.do(http.MethodPost, "/items/"+id.String()+"/toggle", url.Values{"back": {"//evil.example"}})
	assert.Equal(t, "/collections/"+collectionID.String(), rec.Header().Get("Location"))
}

func TestChangePassword_Mismatch(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	f.users.On("ChangePassword", mock.Anything, f.user.ID, mock.Anything).
		Return(errs.Invalid("confirmPassword", "Passwords do not match"))

	rec := f.do(http.MethodPost, "/profile/password", url.Values{
		"currentPassword": {"Old!pass1"},
		"newPassword":     {"N3w!password"},
		"confirmPassword": {"other"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match")
}
