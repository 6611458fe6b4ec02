package campaigns

import "time"

type Campaign struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Summary     string    `gorm:"not null;default:''" json:"summary"`
	Description string    `gorm:"not null;default:''" json:"description"`
	Goal        float64   `gorm:"type:numeric(12,2);not null;default:0" json:"goal"`
	ImageURL    string    `gorm:"not null;default:''" json:"imageUrl"`
	Category    string    `gorm:"not null;default:''" json:"category"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CreateInput struct {
	Title       string
	Slug        string
	Summary     string
	Description string
	Goal        float64
	ImageURL    string
	Category    string
	Active      bool
}

type UpdateInput struct {
	ID          string
	Title       string
	Slug        string
	Summary     string
	Description string
	Goal        float64
	ImageURL    string
	Category    string
	Active      bool
}
