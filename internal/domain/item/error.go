package item

import "collectionhub/internal/domain/errs"

var (
	ErrNotFound  = errs.New(errs.ErrNotFound, "item not found")
	ErrForbidden = errs.New(errs.ErrForbidden, "collection does not belong to the current user")
)
