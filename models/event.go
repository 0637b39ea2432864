package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a one-off calendar entry created by a user. Unlike contact
// birthdays/anniversaries, the date is absolute and does not recur.
type Event struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string    `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`

	gorm.Model
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}
