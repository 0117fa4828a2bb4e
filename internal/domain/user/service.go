package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"collectionhub/internal/domain/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// dummyHash сравнивается при неизвестном логине, чтобы время ответа
// не выдавало, существует ли пользователь.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("collectionhub-dummy-password"), bcrypt.DefaultCost)

var compareHashAndPassword = bcrypt.CompareHashAndPassword

type Servicer interface {
	Register(ctx context.Context, in SignupInput) (User, error)
	Authenticate(ctx context.Context, login, password string) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, in PasswordChange) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *Service) Register(ctx context.Context, in SignupInput) (User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.ValidateSignup(in); err != nil {
		s.log.Debug("validation failed", "username", in.Username, "error", err)
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("Хэш пароля: %w", err)
	}

	u, err := s.repo.Create(ctx, in.Username, in.Email, string(hash))
	if err != nil {
		return User{}, err
	}

	s.log.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Authenticate не различает "нет пользователя" и "неверный пароль",
// наружу всегда уходит ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, login, password string) (User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			_ = compareHashAndPassword(dummyHash, []byte(password))
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := compareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := s.validator.ValidateProfile(username, email); err != nil {
		return User{}, err
	}

	return s.repo.UpdateProfile(ctx, id, username, email)
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, in PasswordChange) error {
	var verr errs.ValidationError
	if in.CurrentPassword == "" {
		verr.Add("currentPassword", "Current password is required")
	}
	if err := s.validator.ValidatePassword(in.NewPassword); err != nil {
		verr.Add("newPassword", errs.FieldMessages(err)["password"])
	}
	if in.NewPassword != in.ConfirmPassword {
		verr.Add("confirmPassword", "Passwords do not match")
	}
	if err := verr.Err(); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("Хэш пароля: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	s.log.Info("password changed", "user_id", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}
