package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a person known to a user. Birthday and anniversary are stored
// as full dates but only the month and day matter: both recur every year.
type Contact struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Email       string
	Phone       string
	Birthday    *time.Time
	Anniversary *time.Time

	gorm.Model
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}
