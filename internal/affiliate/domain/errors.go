package domain

import "errors"

var (
	ErrInvalidReference = errors.New("invalid product reference")
	ErrProductNotFound  = errors.New("product not found")
	ErrStoreUnavailable = errors.New("product store unavailable")
)
