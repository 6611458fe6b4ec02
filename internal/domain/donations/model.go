package donations

import "time"

// Status is the settlement state of a donation. Stored values outside the
// known set are collapsed to StatusOther rather than passed through.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
	StatusFailed    Status = "Failed"
	StatusOther     Status = "Other"
)

// NormalizeStatus maps a stored string onto the closed Status set.
// Blank means Completed: donations recorded before the status column
// existed carry no value.
func NormalizeStatus(value string) Status {
	switch Status(value) {
	case StatusCompleted, StatusPending, StatusFailed:
		return Status(value)
	}
	if value == "" {
		return StatusCompleted
	}
	return StatusOther
}

const (
	// UnknownSource groups donations recorded without a source tag.
	UnknownSource = "Unknown"
	// AnonymousDonor is the display name for donations without a donor name.
	AnonymousDonor = "Anonymous donor"
)

// NormalizeSource substitutes UnknownSource for a blank source tag.
func NormalizeSource(value string) string {
	if value == "" {
		return UnknownSource
	}
	return value
}

type Donation struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Amount     float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency   string    `gorm:"size:3;not null" json:"currency"`
	DonorName  string    `gorm:"not null;default:''" json:"donorName"`
	DonorEmail string    `gorm:"not null;default:''" json:"donorEmail"`
	Source     string    `gorm:"not null;default:''" json:"source"`
	Status     string    `gorm:"not null;default:'Completed'" json:"status"`
	Category   string    `gorm:"not null;default:''" json:"category"`
	CampaignID string    `gorm:"not null;default:''" json:"campaignId"`
	CreatedAt  time.Time `gorm:"index;not null" json:"createdAt"`
}

type CreateInput struct {
	Amount     float64
	Currency   string
	DonorName  string
	DonorEmail string
	Source     string
	Category   string
	CampaignID string
}

type ListFilter struct {
	Limit  int
	Offset int
}
