// services/candidates.go
package services

import (
	"fmt"
	"time"

	"celebratemate-backend/models"
	"celebratemate-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderCandidate is a due occasion joined with the owning user's
// addresses and reminder settings. Computed fresh on every run.
type ReminderCandidate struct {
	Kind     string // event, birthday, anniversary
	SourceID uuid.UUID
	UserID   uuid.UUID

	Title       string
	Date        time.Time // the occurrence date, not the stored date
	Description string

	ContactEmail string
	UserEmail    string
	UserPhone    string
	UserChatID   string

	Lead     int
	Channels models.ChannelSet
}

// EmailRecipient prefers the contact's own address and falls back to the
// owning user's, matching the due-event join semantics.
func (c ReminderCandidate) EmailRecipient() string {
	if c.ContactEmail != "" {
		return c.ContactEmail
	}
	return c.UserEmail
}

// AutoMessageCandidate is a same-day occasion whose greeting goes to the
// contact itself, on behalf of the owning user.
type AutoMessageCandidate struct {
	Kind     string // birthday, anniversary
	SourceID uuid.UUID
	UserID   uuid.UUID

	ContactName  string
	ContactEmail string
	ContactPhone string
	Date         time.Time

	Template string
	Channels models.ChannelSet
	FromName string
}

// CandidateStore is the read side of the dispatch engine plus the dispatch
// log used for idempotency.
type CandidateStore interface {
	DueReminders(today time.Time) ([]ReminderCandidate, error)
	TodaysOccasions(today time.Time) ([]AutoMessageCandidate, error)
	AlreadyDispatched(job, kind string, sourceID uuid.UUID, year int) (bool, error)
	RecordDispatch(entry *models.DispatchLog) error
}

// GormCandidateStore loads rows through gorm and applies the selection
// predicates in Go so the recurrence math stays in one tested place.
type GormCandidateStore struct {
	db *gorm.DB
}

func NewGormCandidateStore(db *gorm.DB) *GormCandidateStore {
	return &GormCandidateStore{db: db}
}

func (s *GormCandidateStore) DueReminders(today time.Time) ([]ReminderCandidate, error) {
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.db.Where("date >= ?", utils.BeginningOfDay(today)).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	var contacts []models.Contact
	if err := s.db.Where("birthday IS NOT NULL OR anniversary IS NOT NULL").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}

	candidates := dueEventCandidates(events, users, today)
	candidates = append(candidates, dueContactCandidates(contacts, users, today)...)
	return candidates, nil
}

func (s *GormCandidateStore) TodaysOccasions(today time.Time) ([]AutoMessageCandidate, error) {
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err := s.db.Where("birthday IS NOT NULL OR anniversary IS NOT NULL").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}

	return sameDayCandidates(contacts, users, today), nil
}

func (s *GormCandidateStore) AlreadyDispatched(job, kind string, sourceID uuid.UUID, year int) (bool, error) {
	var count int64
	err := s.db.Model(&models.DispatchLog{}).
		Where("job = ? AND kind = ? AND source_id = ? AND occasion_year = ? AND status = ?",
			job, kind, sourceID, year, "sent").
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check dispatch log: %w", err)
	}
	return count > 0, nil
}

func (s *GormCandidateStore) RecordDispatch(entry *models.DispatchLog) error {
	return s.db.Create(entry).Error
}

func (s *GormCandidateStore) loadUsers() (map[uuid.UUID]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// dueEventCandidates selects events whose absolute date is exactly the
// owner's lead time away from today. Events do not recur.
func dueEventCandidates(events []models.Event, users map[uuid.UUID]models.User, today time.Time) []ReminderCandidate {
	var out []ReminderCandidate
	for _, e := range events {
		u, ok := users[e.UserID]
		if !ok {
			continue
		}
		if utils.DaysBetween(today, e.Date) != u.ReminderLead {
			continue
		}
		out = append(out, ReminderCandidate{
			Kind:        models.OccasionEvent,
			SourceID:    e.ID,
			UserID:      u.ID,
			Title:       e.Title,
			Date:        utils.BeginningOfDay(e.Date),
			Description: e.Description,
			UserEmail:   u.Email,
			UserPhone:   u.Phone,
			UserChatID:  u.TelegramChatID,
			Lead:        u.ReminderLead,
			Channels:    u.ReminderChannels,
		})
	}
	return out
}

// dueContactCandidates selects contact birthdays/anniversaries whose next
// projected occurrence is exactly the owner's lead time away.
func dueContactCandidates(contacts []models.Contact, users map[uuid.UUID]models.User, today time.Time) []ReminderCandidate {
	var out []ReminderCandidate
	for _, c := range contacts {
		u, ok := users[c.UserID]
		if !ok {
			continue
		}
		if c.Birthday != nil {
			if cand, due := contactCandidate(c, u, *c.Birthday, models.OccasionBirthday, today); due {
				out = append(out, cand)
			}
		}
		if c.Anniversary != nil {
			if cand, due := contactCandidate(c, u, *c.Anniversary, models.OccasionAnniversary, today); due {
				out = append(out, cand)
			}
		}
	}
	return out
}

func contactCandidate(c models.Contact, u models.User, stored time.Time, kind string, today time.Time) (ReminderCandidate, bool) {
	occurrence := utils.NextOccurrence(stored, today)
	if utils.DaysBetween(today, occurrence) != u.ReminderLead {
		return ReminderCandidate{}, false
	}

	title := fmt.Sprintf("%s's Birthday", c.Name)
	description := "Birthday reminder"
	if kind == models.OccasionAnniversary {
		title = fmt.Sprintf("%s's Anniversary", c.Name)
		description = "Anniversary reminder"
	}

	return ReminderCandidate{
		Kind:         kind,
		SourceID:     c.ID,
		UserID:       u.ID,
		Title:        title,
		Date:         occurrence,
		Description:  description,
		ContactEmail: c.Email,
		UserEmail:    u.Email,
		UserPhone:    u.Phone,
		UserChatID:   u.TelegramChatID,
		Lead:         u.ReminderLead,
		Channels:     u.ReminderChannels,
	}, true
}

// sameDayCandidates selects contact occasions falling on today for users
// that enabled auto-messages. No lead time here.
func sameDayCandidates(contacts []models.Contact, users map[uuid.UUID]models.User, today time.Time) []AutoMessageCandidate {
	var out []AutoMessageCandidate
	for _, c := range contacts {
		u, ok := users[c.UserID]
		if !ok || !u.AutoSendEnabled {
			continue
		}
		if c.Birthday != nil && utils.SameMonthDay(*c.Birthday, today) {
			out = append(out, autoMessageCandidate(c, u, models.OccasionBirthday, today))
		}
		if c.Anniversary != nil && utils.SameMonthDay(*c.Anniversary, today) {
			out = append(out, autoMessageCandidate(c, u, models.OccasionAnniversary, today))
		}
	}
	return out
}

func autoMessageCandidate(c models.Contact, u models.User, kind string, today time.Time) AutoMessageCandidate {
	return AutoMessageCandidate{
		Kind:         kind,
		SourceID:     c.ID,
		UserID:       u.ID,
		ContactName:  c.Name,
		ContactEmail: c.Email,
		ContactPhone: c.Phone,
		Date:         utils.BeginningOfDay(today),
		Template:     u.AutoMessageTemplate,
		Channels:     u.AutoChannels,
		FromName:     u.Name,
	}
}
