package energetic

import "collectionhub/internal/domain/errs"

var (
	ErrInvalidSeed   = errs.New(errs.ErrInvalidInput, "invalid energetics seed file")
	ErrAlreadyExists = errs.New(errs.ErrConflict, "energetic with this type and description already exists")
)
