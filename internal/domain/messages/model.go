package messages

import "time"

// Message is a contact-form submission.
type Message struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null;default:''" json:"subject"`
	Body      string    `gorm:"not null" json:"body"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"index;not null" json:"createdAt"`
}

type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}
