package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const DefaultTTL = time.Hour

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID) (Session, error)
	Validate(ctx context.Context, token string) (uuid.UUID, error)
	Refresh(ctx context.Context, token string) (Session, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo   Repository
	signer *Signer
	ttl    time.Duration
	log    *slog.Logger
}

func NewService(repo Repository, signer *Signer, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:   repo,
		signer: signer,
		ttl:    ttl,
		log:    log.With("component", "session"),
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID) (Session, error) {
	token, claims, err := s.signer.Issue(userID, s.ttl)
	if err != nil {
		return Session{}, err
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return Session{}, fmt.Errorf("parse jti: %w", err)
	}

	sess := Session{
		ID:        id,
		UserID:    userID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		CreatedAt: claims.IssuedAt.Time,
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}

	return sess, nil
}

// Validate проверяет токен и наличие живой записи о сессии.
// Просроченная запись удаляется.
func (s *Service) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	sess, err := s.find(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}
	return sess.UserID, nil
}

func (s *Service) find(ctx context.Context, token string) (Session, error) {
	claims, userID, err := s.signer.Parse(token)
	if err != nil {
		return Session{}, err
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return Session{}, fmt.Errorf("%w: bad session id", ErrInvalidToken)
	}

	sess, err := s.repo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidToken
		}
		return Session{}, fmt.Errorf("find session: %w", err)
	}

	if sess.Expired(s.signer.now()) {
		if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
			s.log.Warn("failed to delete expired session", "error", err)
		}
		return Session{}, ErrInvalidToken
	}

	if sess.UserID != userID {
		return Session{}, ErrInvalidToken
	}

	return sess, nil
}

// Refresh продлевает действующую сессию. Новый токен принадлежит той же
// сессии, поэтому прежние токены остаются действительными до своего срока.
func (s *Service) Refresh(ctx context.Context, token string) (Session, error) {
	sess, err := s.find(ctx, token)
	if err != nil {
		return Session{}, err
	}

	newToken, claims, err := s.signer.Reissue(sess.ID, sess.UserID, s.ttl)
	if err != nil {
		return Session{}, err
	}

	if err := s.repo.Extend(ctx, sess.ID, newToken, claims.ExpiresAt.Time); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidToken
		}
		return Session{}, fmt.Errorf("refresh session: %w", err)
	}

	sess.Token = newToken
	sess.ExpiresAt = claims.ExpiresAt.Time
	return sess, nil
}

// Revoke удаляет сессию вместе со всеми ее токенами; отсутствие сессии не ошибка.
func (s *Service) Revoke(ctx context.Context, token string) error {
	id, err := s.signer.SessionID(token)
	if err != nil {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
