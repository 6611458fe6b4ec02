package stories

import "time"

// Story is an impact story shown on the public site.
type Story struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Excerpt     string    `gorm:"not null;default:''" json:"excerpt"`
	Body        string    `gorm:"not null;default:''" json:"body"`
	ImageURL    string    `gorm:"not null;default:''" json:"imageUrl"`
	PublishedAt time.Time `gorm:"not null" json:"publishedAt"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type UpsertInput struct {
	Title       string
	Excerpt     string
	Body        string
	ImageURL    string
	PublishedAt *time.Time
}
