package collection

import "collectionhub/internal/domain/errs"

var ErrNotFound = errs.New(errs.ErrNotFound, "collection not found")
