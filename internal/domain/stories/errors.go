package stories

import "errors"

var (
	ErrStoryNotFound = errors.New("story not found")
	ErrTitleRequired = errors.New("story title is required")
)
