package content

import "errors"

var (
	ErrSectionNotFound = errors.New("content section not found")
	ErrInvalidKey      = errors.New("invalid content section key")
)
