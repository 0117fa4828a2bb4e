package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"collectionhub/internal/domain/errs"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 8
	// bcrypt не принимает пароли длиннее 72 байт
	MaxPasswordLen = 72
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateSignup(in SignupInput) error
	ValidateProfile(username, email string) error
	ValidatePassword(password string) error
}

type PasswordValidator struct {
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewPasswordValidator создает новый валидатор
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

// ValidateSignup валидирует данные для регистрации.
// Ошибки собираются по всем полям сразу, чтобы форма могла показать их вместе.
func (v *PasswordValidator) ValidateSignup(in SignupInput) error {
	var verr errs.ValidationError

	if err := v.validateUsername(in.Username); err != nil {
		verr.Add("username", err.Error())
	}
	if err := validateEmail(in.Email); err != nil {
		verr.Add("email", err.Error())
	}
	if err := v.passwordRules(in.Password); err != nil {
		verr.Add("password", err.Error())
	}

	return verr.Err()
}

// ValidateProfile валидирует username и email при редактировании профиля
func (v *PasswordValidator) ValidateProfile(username, email string) error {
	var verr errs.ValidationError

	if err := v.validateUsername(username); err != nil {
		verr.Add("username", err.Error())
	}
	if err := validateEmail(email); err != nil {
		verr.Add("email", err.Error())
	}

	return verr.Err()
}

// ValidatePassword валидирует пароль
func (v *PasswordValidator) ValidatePassword(password string) error {
	if err := v.passwordRules(password); err != nil {
		return errs.Invalid("password", err.Error())
	}
	return nil
}

func (v *PasswordValidator) validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("Username is required")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("Email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address, "@") {
		return fmt.Errorf("email is not a valid address")
	}

	return nil
}

func (v *PasswordValidator) passwordRules(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if v.requireLower && !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	if v.requireSpecialChar && !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}
