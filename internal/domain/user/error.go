package user

import "collectionhub/internal/domain/errs"

var (
	ErrNotFound           = errs.New(errs.ErrNotFound, "user not found")
	ErrInvalidCredentials = errs.New(errs.ErrUnauthorized, "invalid credentials")
	ErrAlreadyExists      = errs.New(errs.ErrConflict, "username or email already exists")
	ErrWrongPassword      = errs.Invalid("currentPassword", "Current password is incorrect")
)
