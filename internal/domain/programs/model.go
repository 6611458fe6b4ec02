package programs

import "time"

type Program struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Summary     string    `gorm:"not null;default:''" json:"summary"`
	Description string    `gorm:"not null;default:''" json:"description"`
	ImageURL    string    `gorm:"not null;default:''" json:"imageUrl"`
	SortOrder   int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type UpsertInput struct {
	Title       string
	Summary     string
	Description string
	ImageURL    string
	SortOrder   int
}
