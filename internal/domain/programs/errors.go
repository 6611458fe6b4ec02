package programs

import "errors"

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrTitleRequired   = errors.New("program title is required")
)
