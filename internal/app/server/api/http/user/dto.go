package user

import (
	"net/http"
	"time"

	"collectionhub/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type signupInput struct {
	Body struct {
		Username string `json:"username" maxLength:"64"`
		Email    string `json:"email" maxLength:"254"`
		Password string `json:"password" maxLength:"128"`
	}
}

type loginInput struct {
	Body struct {
		Login    string `json:"login" doc:"Username or email"`
		Password string `json:"password"`
	}
}

// authOutput - пользователь и cookie новой сессии
type authOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      UserResponse
}

type logoutInput struct {
	Session string `cookie:"session"`
}

type successBody struct {
	Success bool `json:"success"`
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      successBody
}

type meInput struct{}

type meOutput struct {
	Body UserResponse
}

type updateProfileInput struct {
	Body struct {
		Username string `json:"username" maxLength:"64"`
		Email    string `json:"email" maxLength:"254"`
	}
}

type changePasswordInput struct {
	Body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
}

type changePasswordOutput struct {
	Body successBody
}
