package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, s Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, id uuid.UUID) (Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Session), args.Error(1)
}

func (m *MockRepository) Extend(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, id, token, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memRepository хранит сессии в памяти, как таблица sessions
type memRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]Session
}

func newMemRepository() *memRepository {
	return &memRepository{rows: make(map[uuid.UUID]Session)}
}

func (r *memRepository) Create(_ context.Context, s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.ID] = s
	return nil
}

func (r *memRepository) Find(_ context.Context, id uuid.UUID) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (r *memRepository) Extend(_ context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok {
		return ErrNotFound
	}
	s.Token, s.ExpiresAt = token, expiresAt
	r.rows[id] = s
	return nil
}

func (r *memRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func newTestService(repo Repository, now time.Time) *Service {
	return NewService(repo, fixedSigner(now), time.Hour, slog.Default())
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	now := time.Now()
	service := newTestService(mockRepo, now)
	userID := uuid.New()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s Session) bool {
		return s.UserID == userID && s.Token != "" && s.ID != uuid.Nil && s.ExpiresAt.After(now)
	})).Return(nil)

	sess, err := service.Create(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
	assert.WithinDuration(t, now.Add(time.Hour), sess.ExpiresAt, time.Second)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, time.Now())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))

	_, err := service.Create(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_Validate(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	token, claims, err := fixedSigner(now).Issue(userID, time.Hour)
	require.NoError(t, err)
	id := uuid.MustParse(claims.ID)

	live := Session{ID: id, UserID: userID, Token: token, ExpiresAt: now.Add(time.Hour)}

	tests := []struct {
		name      string
		token     string
		setupMock func(m *MockRepository)
		wantErr   error
	}{
		{
			name:  "live session",
			token: token,
			setupMock: func(m *MockRepository) {
				m.On("Find", mock.Anything, id).Return(live, nil)
			},
		},
		{
			name:      "malformed token never reaches repository",
			token:     "garbage",
			setupMock: func(*MockRepository) {},
			wantErr:   ErrInvalidToken,
		},
		{
			name:  "revoked session",
			token: token,
			setupMock: func(m *MockRepository) {
				m.On("Find", mock.Anything, id).Return(Session{}, ErrNotFound)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:  "expired row is deleted",
			token: token,
			setupMock: func(m *MockRepository) {
				expired := live
				expired.ExpiresAt = now.Add(-time.Minute)
				m.On("Find", mock.Anything, id).Return(expired, nil)
				m.On("Delete", mock.Anything, id).Return(nil)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:  "row of another user",
			token: token,
			setupMock: func(m *MockRepository) {
				other := live
				other.UserID = uuid.New()
				m.On("Find", mock.Anything, id).Return(other, nil)
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)
			service := newTestService(mockRepo, now)

			got, err := service.Validate(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, userID, got)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_Validate_RepositoryError(t *testing.T) {
	now := time.Now()
	token, _, err := fixedSigner(now).Issue(uuid.New(), time.Hour)
	require.NoError(t, err)

	mockRepo := new(MockRepository)
	mockRepo.On("Find", mock.Anything, mock.Anything).Return(Session{}, errors.New("database error"))
	service := newTestService(mockRepo, now)

	_, err = service.Validate(context.Background(), token)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestService_Refresh(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	token, claims, err := fixedSigner(now).Issue(userID, time.Hour)
	require.NoError(t, err)
	id := uuid.MustParse(claims.ID)

	later := now.Add(30 * time.Minute)

	mockRepo := new(MockRepository)
	mockRepo.On("Find", mock.Anything, id).
		Return(Session{ID: id, UserID: userID, Token: token, ExpiresAt: now.Add(time.Hour)}, nil)
	mockRepo.On("Extend", mock.Anything, id, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	service := newTestService(mockRepo, later)
	sess, err := service.Refresh(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, id, sess.ID)
	assert.Equal(t, userID, sess.UserID)
	assert.WithinDuration(t, later.Add(time.Hour), sess.ExpiresAt, time.Second)

	// новый токен принадлежит той же сессии
	parsed, _, err := fixedSigner(later).Parse(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, parsed.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Refresh_KeepsParallelTokensValid(t *testing.T) {
	now := time.Now()
	repo := newMemRepository()
	service := newTestService(repo, now)
	ctx := context.Background()

	sess, err := service.Create(ctx, uuid.New())
	require.NoError(t, err)
	cookie := sess.Token

	// две вкладки обновляют сессию с одним и тем же cookie
	first, err := service.Refresh(ctx, cookie)
	require.NoError(t, err)
	second, err := service.Refresh(ctx, cookie)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	for _, tok := range []string{cookie, first.Token, second.Token} {
		got, err := service.Validate(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, sess.UserID, got)
	}

	// выход по любому токену завершает всю сессию
	require.NoError(t, service.Revoke(ctx, first.Token))
	for _, tok := range []string{cookie, first.Token, second.Token} {
		_, err := service.Validate(ctx, tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestService_Revoke(t *testing.T) {
	now := time.Now()
	token, claims, err := fixedSigner(now).Issue(uuid.New(), time.Hour)
	require.NoError(t, err)
	id := uuid.MustParse(claims.ID)

	t.Run("deletes row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)
		service := newTestService(mockRepo, now)

		require.NoError(t, service.Revoke(context.Background(), token))
		mockRepo.AssertExpectations(t)
	})

	t.Run("expired token still revokes", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)
		service := newTestService(mockRepo, now.Add(2*time.Hour))

		require.NoError(t, service.Revoke(context.Background(), token))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing row is fine", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Delete", mock.Anything, id).Return(ErrNotFound)
		service := newTestService(mockRepo, now)

		assert.NoError(t, service.Revoke(context.Background(), token))
	})

	t.Run("garbage or empty token", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := newTestService(mockRepo, now)

		assert.NoError(t, service.Revoke(context.Background(), ""))
		assert.NoError(t, service.Revoke(context.Background(), "garbage"))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
