package models

import (
	"time"

	"celebratemate-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAutoMessageTemplate = "Happy Birthday {name}!"

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null"`
	Phone    string
	Birthday *time.Time

	// Telegram chat the user linked for chat notifications. Empty until linked.
	TelegramChatID string

	// Reminder settings. Lead is the number of days before an occasion a
	// reminder fires.
	ReminderLead     int        `gorm:"default:1"`
	ReminderChannels ChannelSet `gorm:"type:jsonb;default:'[\"email\"]'"`

	// Auto-message settings: same-day greetings sent to the contact itself.
	AutoSendEnabled     bool       `gorm:"default:false"`
	AutoMessageTemplate string     `gorm:"default:'Happy Birthday {name}!'"`
	AutoChannels        ChannelSet `gorm:"type:jsonb;default:'[\"sms\"]'"`

	LastLogin *time.Time

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	if u.ReminderLead <= 0 {
		u.ReminderLead = 1
	}
	if u.ReminderChannels.IsEmpty() {
		u.ReminderChannels = ChannelSet{ChannelEmail}
	}
	if u.AutoMessageTemplate == "" {
		u.AutoMessageTemplate = DefaultAutoMessageTemplate
	}
	if u.AutoChannels.IsEmpty() {
		u.AutoChannels = ChannelSet{ChannelSMS}
	}
	return
}
