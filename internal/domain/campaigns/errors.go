package campaigns

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrSlugTaken        = errors.New("campaign slug already exists")
	ErrTitleRequired    = errors.New("campaign title is required")
)
