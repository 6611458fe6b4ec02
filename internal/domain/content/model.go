package content

import (
	"time"

	"gorm.io/datatypes"
)

// Section is one keyed block of editable site content (hero copy, about
// text, contact details). The value is free-form JSON owned by the admin
// dashboard; the server stores and serves it without interpreting it.
type Section struct {
	Key       string         `gorm:"primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Section) TableName() string {
	return "content_sections"
}
