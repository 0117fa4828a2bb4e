package session

import "collectionhub/internal/domain/errs"

var (
	ErrInvalidToken = errs.New(errs.ErrUnauthorized, "invalid session")
	ErrNotFound     = errs.New(errs.ErrNotFound, "session not found")
)
