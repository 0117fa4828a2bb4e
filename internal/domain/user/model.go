package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupInput - данные регистрации
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// PasswordChange - смена пароля из профиля
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}
