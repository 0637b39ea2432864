// models/dispatch_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Occasion kinds recorded in the dispatch log.
const (
	OccasionEvent       = "event"
	OccasionBirthday    = "birthday"
	OccasionAnniversary = "anniversary"
)

// DispatchLog records one channel attempt for one occasion. The
// (kind, source_id, occasion_year, job) tuple doubles as the idempotency
// key: a candidate with a sent row for the current occurrence year is
// skipped, so running a job twice in one day cannot notify twice.
type DispatchLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	Kind         string    `gorm:"type:varchar(20);index:idx_dispatch_occasion"` // event, birthday, anniversary
	SourceID     uuid.UUID `gorm:"type:uuid;index:idx_dispatch_occasion"`
	OccasionYear int       `gorm:"index:idx_dispatch_occasion"`
	Job          string    `gorm:"type:varchar(20);index:idx_dispatch_occasion"` // reminder, auto-message
	Channel      string    `gorm:"type:varchar(20)"`                             // email, sms, chat
	Recipient    string
	Message      string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time
	gorm.Model
}

func (d *DispatchLog) BeforeCreate(tx *gorm.DB) (err error) {
	d.ID = uuid.New()
	return
}
