package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims - полезная нагрузка токена сессии
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Signer подписывает и проверяет токены HS256.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret, now: time.Now}
}

// Issue выпускает токен новой сессии; jti каждой сессии уникален.
func (s *Signer) Issue(userID uuid.UUID, ttl time.Duration) (string, Claims, error) {
	return s.sign(uuid.New(), userID, ttl)
}

// Reissue подписывает токен той же сессии с новым сроком действия.
func (s *Signer) Reissue(sessionID, userID uuid.UUID, ttl time.Duration) (string, Claims, error) {
	return s.sign(sessionID, userID, ttl)
}

func (s *Signer) sign(sessionID, userID uuid.UUID, ttl time.Duration) (string, Claims, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID.String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", Claims{}, fmt.Errorf("sign token: %w", err)
	}

	return token, claims, nil
}

// Parse проверяет подпись, алгоритм и срок действия токена.
func (s *Signer) Parse(token string) (Claims, uuid.UUID, error) {
	if token == "" {
		return Claims{}, uuid.Nil, ErrInvalidToken
	}

	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, uuid.Nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return Claims{}, uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return Claims{}, uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Claims{}, uuid.Nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return claims, userID, nil
}

// SessionID возвращает jti токена с верной подписью, срок действия не проверяется.
// Нужен для выхода по уже просроченному cookie.
func (s *Signer) SessionID(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalidToken
	}

	claims := Claims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad session id", ErrInvalidToken)
	}
	return id, nil
}
