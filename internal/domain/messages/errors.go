package messages

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidMessage  = errors.New("name, email and message are required")
)
