package db

import "errors"

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrRenderFailed   = errors.New("failed to render document")
)
