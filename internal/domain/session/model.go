package session

import (
	"time"

	"github.com/google/uuid"
)

// Session - вход пользователя. ID совпадает с jti всех токенов сессии,
// Token - последний выданный из них.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
